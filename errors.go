package hades377

import "errors"

var (
	// ErrFullRoundsOdd is returned by New when the full-round count is odd.
	// The schedule splits the full rounds into two equal halves around the
	// partial rounds, so an odd count has no valid split.
	ErrFullRoundsOdd = errors.New("hades377: full rounds count must be even")

	// ErrInputFull is returned by the input methods when the buffer already
	// holds width elements, or when a batch would push it past width.
	ErrInputFull = errors.New("hades377: input buffer is full")

	// ErrNoMoreConstants is returned when the round constant cursor runs dry
	// mid-evaluation. It signals a width/round-count mismatch between the
	// constant table and the schedule; self-generated tables are sized
	// exactly, so hitting it means the instance was tampered with.
	ErrNoMoreConstants = errors.New("hades377: round constants exhausted")
)
