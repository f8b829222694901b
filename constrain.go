package hades377

import (
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/hades377/internal/roundconst"
)

// ConstrainResult emits the permutation into a gnark constraint system. The
// words are pre-allocated circuit variables, one per input word (binding them
// to the buffer's values is the caller's proof-construction concern); the
// return value holds the linear combinations of the permuted output.
//
// The schedule mirrors Result word for word and round for round, and consumes
// round constants in identical order and count — that alignment is what makes
// a proof over this circuit sound with respect to the native result. Round-key
// addition and the matrix mix fold constants into the linear combinations for
// free; only the S-box allocates gates, three per application.
//
// The api handle is borrowed for the duration of the call and not retained.
func (p *Permutation) ConstrainResult(api frontend.API, words []frontend.Variable) ([]frontend.Variable, error) {
	constants := p.constants.Iter()

	newWords := make([]frontend.Variable, len(words))
	copy(newWords, words)
	if len(newWords) == 0 {
		return newWords, nil
	}

	var err error

	// First half of the full rounds.
	for i := 0; i < p.fullRounds/2; i++ {
		if newWords, err = p.constrainApplyFullRound(api, constants, newWords); err != nil {
			return nil, err
		}
	}

	// Partial rounds.
	for i := 0; i < p.partialRounds; i++ {
		if newWords, err = p.constrainApplyPartialRound(api, constants, newWords); err != nil {
			return nil, err
		}
	}

	// Second half of the full rounds.
	for i := 0; i < p.fullRounds/2; i++ {
		if newWords, err = p.constrainApplyFullRound(api, constants, newWords); err != nil {
			return nil, err
		}
	}

	return newWords, nil
}

func (p *Permutation) constrainApplyFullRound(api frontend.API, constants *roundconst.Iterator, words []frontend.Variable) ([]frontend.Variable, error) {
	newWords, err := p.constrainAddRoundKey(api, constants, words)
	if err != nil {
		return nil, err
	}
	for i := range newWords {
		newWords[i] = constrainQuinticSBox(api, newWords[i])
	}
	return p.matrix.ConstrainMulVector(api, newWords), nil
}

func (p *Permutation) constrainApplyPartialRound(api frontend.API, constants *roundconst.Iterator, words []frontend.Variable) ([]frontend.Variable, error) {
	newWords, err := p.constrainAddRoundKey(api, constants, words)
	if err != nil {
		return nil, err
	}
	newWords[0] = constrainQuinticSBox(api, newWords[0])
	return p.matrix.ConstrainMulVector(api, newWords), nil
}

// constrainAddRoundKey lifts each drawn constant into the word's linear
// combination. Constants are free in the constraint system; no gate is
// allocated here.
func (p *Permutation) constrainAddRoundKey(api frontend.API, constants *roundconst.Iterator, words []frontend.Variable) ([]frontend.Variable, error) {
	newWords := make([]frontend.Variable, len(words))
	for i := range words {
		c, ok := constants.Next()
		if !ok {
			return nil, ErrNoMoreConstants
		}
		newWords[i] = api.Add(words[i], c)
	}
	return newWords, nil
}
