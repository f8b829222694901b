// Package roundconst derives the flat table of Hades round constants for a
// given round schedule and exposes a sequential cursor over it.
package roundconst

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/crypto/sha3"
)

// Domain separator for constant derivation. Changing it changes every table.
var domainSep = []byte("hades377-round-constants-v1")

// Constants is a flat table of round constants, ordered round by round and
// word by word within a round.
type Constants []fr.Element

// Generate derives width*(fullRounds+partialRounds) constants from the round
// schedule. The derivation is a pure function of the three parameters: they
// are absorbed into SHAKE256 behind a fixed domain separator and the output
// stream is reduced to field elements 64 bytes at a time.
func Generate(fullRounds, partialRounds, width int) Constants {
	shake := sha3.NewShake256()
	shake.Write(domainSep)

	var params [12]byte
	binary.BigEndian.PutUint32(params[0:4], uint32(fullRounds))
	binary.BigEndian.PutUint32(params[4:8], uint32(partialRounds))
	binary.BigEndian.PutUint32(params[8:12], uint32(width))
	shake.Write(params[:])

	constants := make(Constants, width*(fullRounds+partialRounds))
	// 64 uniform bytes per element keep the mod-order reduction bias negligible.
	buf := make([]byte, 2*fr.Bytes)
	for i := range constants {
		shake.Read(buf)
		constants[i].SetBigInt(new(big.Int).SetBytes(buf))
	}
	return constants
}

// Iterator is a read-only cursor over a constant table. It is scoped to a
// single evaluation call and never shared.
type Iterator struct {
	constants Constants
	pos       int
}

// Iter returns a fresh cursor positioned at the first constant.
func (c Constants) Iter() *Iterator {
	return &Iterator{constants: c}
}

// Next returns the next unconsumed constant, or false when the table is
// exhausted.
func (it *Iterator) Next() (fr.Element, bool) {
	if it.pos >= len(it.constants) {
		return fr.Element{}, false
	}
	c := it.constants[it.pos]
	it.pos++
	return c, true
}
