// Package tape implements the data memory of the interpreter.
// The data memory is unbounded by definition. To accommodate such an
// abstraction the backing buffer is resized on demand, new regions are
// initialized to 0 and the buffer never shrinks.
package tape

import (
	"errors"
	"math"
)

// Granularity is the memory allocation granularity in bytes.
// Growing the buffer allocates this many cells beyond the accessed index
// to reduce the number of reallocations.
const Granularity = 32768

// ErrResourceExhausted is returned when the data memory can not be grown
// to cover an accessed cell.
var ErrResourceExhausted = errors.New("out of memory")

// Tape is a growable byte cell memory addressed by a non-negative index.
// It is owned by a single interpreter instance and not safe for
// concurrent use.
type Tape struct {
	data  []byte
	limit int
}

// New returns a new empty tape that can grow up to the address space limit.
func New() *Tape {
	return NewWithLimit(math.MaxInt)
}

// NewWithLimit returns a new empty tape with a maximum buffer size in bytes.
func NewWithLimit(limit int) *Tape {
	return &Tape{
		limit: limit,
	}
}

// ensure makes sure that the cell at the given index can be safely
// accessed by growing the buffer to the required size. New cells are
// initialized to 0.
func (t *Tape) ensure(index int) error {
	if index < len(t.data) {
		return nil
	}
	if index < 0 || index > t.limit-1-Granularity {
		return ErrResourceExhausted
	}

	size := index + 1 + Granularity
	grown := make([]byte, size)
	copy(grown, t.data)
	t.data = grown
	return nil
}

// Get returns the value of the cell at the given index.
// Cells beyond the current buffer read as 0, the buffer is not grown.
func (t *Tape) Get(index int) byte {
	if index < 0 || index >= len(t.data) {
		return 0
	}
	return t.data[index]
}

// Increment increments the value of the cell at the given index,
// wrapping around from 255 to 0.
func (t *Tape) Increment(index int) error {
	if err := t.ensure(index); err != nil {
		return err
	}
	t.data[index]++
	return nil
}

// Decrement decrements the value of the cell at the given index,
// wrapping around from 0 to 255.
func (t *Tape) Decrement(index int) error {
	if err := t.ensure(index); err != nil {
		return err
	}
	t.data[index]--
	return nil
}

// Set sets the value of the cell at the given index.
func (t *Tape) Set(index int, value byte) error {
	if err := t.ensure(index); err != nil {
		return err
	}
	t.data[index] = value
	return nil
}

// Len returns the size of the currently allocated buffer.
func (t *Tape) Len() int {
	return len(t.data)
}
