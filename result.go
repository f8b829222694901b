package hades377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/hades377/internal/roundconst"
)

// Result applies the permutation to the current buffer contents and returns
// the permuted words. The buffer itself is left untouched; the schedule runs
// on a working copy with a fresh constant cursor, so the call is a pure
// function of the buffer and the tables fixed at construction.
//
// The buffer need not be full. The working vector keeps the buffer's length
// throughout: each round draws one constant per word and mixes through the
// leading submatrix.
func (p *Permutation) Result() ([]fr.Element, error) {
	constants := p.constants.Iter()

	words := make([]fr.Element, len(p.data))
	copy(words, p.data)
	if len(words) == 0 {
		return words, nil
	}

	var err error

	// First half of the full rounds.
	for i := 0; i < p.fullRounds/2; i++ {
		if words, err = p.applyFullRound(constants, words); err != nil {
			return nil, err
		}
	}

	// Partial rounds.
	for i := 0; i < p.partialRounds; i++ {
		if words, err = p.applyPartialRound(constants, words); err != nil {
			return nil, err
		}
	}

	// Second half of the full rounds.
	for i := 0; i < p.fullRounds/2; i++ {
		if words, err = p.applyFullRound(constants, words); err != nil {
			return nil, err
		}
	}

	return words, nil
}

// applyFullRound adds round keys to every word, applies the quintic S-box to
// every word, then mixes through the MDS matrix.
func (p *Permutation) applyFullRound(constants *roundconst.Iterator, words []fr.Element) ([]fr.Element, error) {
	newWords, err := p.addRoundKey(constants, words)
	if err != nil {
		return nil, err
	}
	for i := range newWords {
		quinticSBox(&newWords[i])
	}
	return p.matrix.MulVector(newWords), nil
}

// applyPartialRound is a full round with the S-box restricted to word 0.
func (p *Permutation) applyPartialRound(constants *roundconst.Iterator, words []fr.Element) ([]fr.Element, error) {
	newWords, err := p.addRoundKey(constants, words)
	if err != nil {
		return nil, err
	}
	quinticSBox(&newWords[0])
	return p.matrix.MulVector(newWords), nil
}

// addRoundKey draws one constant per word, in word order, and adds it. The
// whole vector is produced before anything is returned, so a mid-round
// exhaustion leaves no partial mutation visible to the caller.
func (p *Permutation) addRoundKey(constants *roundconst.Iterator, words []fr.Element) ([]fr.Element, error) {
	newWords := make([]fr.Element, len(words))
	for i := range words {
		c, ok := constants.Next()
		if !ok {
			return nil, ErrNoMoreConstants
		}
		newWords[i].Add(&words[i], &c)
	}
	return newWords, nil
}
