package sbvec

import (
	"errors"
	"strconv"
)

// ErrEmpty is returned from [*Vector.Front], [*Vector.Back],
// and [*Vector.PopBack] when the vector holds no elements.
var ErrEmpty = errors.New("vector is empty")

// OutOfRangeError is returned when an index is not below the vector's size.
type OutOfRangeError struct {
	Index, Size int
}

func (e OutOfRangeError) Error() string {
	return "index " + strconv.Itoa(e.Index) + " out of range for size " + strconv.Itoa(e.Size)
}
