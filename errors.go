package bitset256

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every error and panic caused by an index >= Capacity
	ErrIndexOutOfRange = errors.New("bitset256: index out of range")

	// ErrInvalidRange is wrapped by the panic raised when a range has start > end
	ErrInvalidRange = errors.New("bitset256: invalid range")
)

// checkIndex panics with an error wrapping ErrIndexOutOfRange if n is not addressable.
// Callers that recover can match the panic value with errors.Is.
func checkIndex(n uint) {
	if n >= Capacity {
		panic(fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, n, Capacity))
	}
}

func checkRange(start, end uint) {
	if start > end {
		panic(fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, start, end))
	}
	checkIndex(end)
}
