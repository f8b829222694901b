// Package hades377 implements a fixed-width Hades (Poseidon-style) sponge
// permutation over the BLS12-377 scalar field.
//
// The permutation evaluates in two interchangeable modes: Result computes on
// field elements directly, ConstrainResult emits the equivalent arithmetic
// constraints into a gnark constraint system. Both modes run the exact same
// schedule over the exact same constant table and mixing matrix, so a circuit
// built from the constrained path represents the same function the native
// path computes.
package hades377

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/hades377/internal/mds"
	"github.com/vocdoni/hades377/internal/roundconst"
)

// hashToFieldDST separates InputBytes mappings from any other use of
// hash-to-field over this curve.
var hashToFieldDST = []byte("hades377:input-bytes:v1")

// Permutation holds the round schedule, the derived constant table and mixing
// matrix, and the input buffer. The schedule and tables are fixed at
// construction; only the buffer mutates. Instances are not safe for
// concurrent use.
type Permutation struct {
	t             int
	fullRounds    int
	partialRounds int

	data []fr.Element

	constants roundconst.Constants
	matrix    mds.Matrix
}

// New returns a permutation of the given width and round schedule. The
// full-round count must be even; constants and matrix are derived here, once.
func New(width, fullRounds, partialRounds int) (*Permutation, error) {
	if fullRounds%2 != 0 {
		return nil, ErrFullRoundsOdd
	}
	if width < 1 {
		return nil, fmt.Errorf("hades377: width must be positive, got %d", width)
	}
	if fullRounds < 0 || partialRounds < 0 {
		return nil, fmt.Errorf("hades377: round counts must be non-negative, got Rf=%d Rp=%d", fullRounds, partialRounds)
	}
	return &Permutation{
		t:             width,
		fullRounds:    fullRounds,
		partialRounds: partialRounds,
		data:          make([]fr.Element, 0, width),
		constants:     roundconst.Generate(fullRounds, partialRounds, width),
		matrix:        mds.Generate(width),
	}, nil
}

// NewDefault returns a permutation with the standard configuration:
// width 9, 8 full rounds, 59 partial rounds.
func NewDefault() *Permutation {
	p, err := New(9, 8, 59)
	if err != nil {
		panic(err) // the default schedule is valid
	}
	return p
}

// Input appends one field element to the buffer.
func (p *Permutation) Input(scalar fr.Element) error {
	if p.inputFull() {
		return ErrInputFull
	}
	p.data = append(p.data, scalar)
	return nil
}

// InputBytes maps an arbitrary byte string to a single field element with the
// RFC 9380 hash-to-field procedure and appends it to the buffer.
func (p *Permutation) InputBytes(data []byte) error {
	elems, err := fr.Hash(data, hashToFieldDST, 1)
	if err != nil {
		return fmt.Errorf("hades377: hash to field: %w", err)
	}
	return p.Input(elems[0])
}

// Inputs appends a batch of field elements. The append is all-or-nothing: if
// the batch does not fit in the remaining width the buffer is left untouched.
func (p *Permutation) Inputs(scalars []fr.Element) error {
	if len(scalars)+len(p.data) > p.t {
		return ErrInputFull
	}
	p.data = append(p.data, scalars...)
	return nil
}

// Reset clears the input buffer. Evaluation does not consume the buffer, so
// reusing an instance for a new input requires an explicit Reset.
func (p *Permutation) Reset() {
	p.data = p.data[:0]
}

// WidthLeft returns how many more elements the buffer can take.
func (p *Permutation) WidthLeft() int {
	return p.t - len(p.data)
}

func (p *Permutation) inputFull() bool {
	return len(p.data) == p.t
}
