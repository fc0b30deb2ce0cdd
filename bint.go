package bint

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidBoundary = errors.New("invalid boundary")
)

// Bint is an immutable integer bounded to [0, boundary).
// Up and Down wrap around instead of leaving the range.
type Bint struct {
	value    uint
	boundary uint
}

// New builds a Bint with the given boundary. A value outside
// [0, boundary) is normalized modulo the boundary.
func New(value, boundary uint) (Bint, error) {
	if boundary == 0 {
		return Bint{}, ErrInvalidBoundary
	}

	return Bint{
		value:    value % boundary,
		boundary: boundary,
	}, nil
}

func (b Bint) Value() uint {
	return b.value
}

func (b Bint) Boundary() uint {
	return b.boundary
}

// Up returns a new Bint one step higher, wrapping to 0 at the boundary.
func (b Bint) Up() Bint {
	return b.UpBy(1)
}

// Down returns a new Bint one step lower, wrapping to boundary-1 below 0.
func (b Bint) Down() Bint {
	return b.DownBy(1)
}

// UpBy returns a new Bint advanced by n, modulo the boundary.
// Equivalent to n calls of Up for any n, including n >= boundary.
func (b Bint) UpBy(n uint) Bint {
	n %= b.boundary
	if n >= b.boundary-b.value {
		b.value = n - (b.boundary - b.value)
	} else {
		b.value += n
	}
	return b
}

// DownBy returns a new Bint lowered by n, modulo the boundary.
// The result is always non-negative.
func (b Bint) DownBy(n uint) Bint {
	n %= b.boundary
	if n > b.value {
		b.value = b.boundary - (n - b.value)
	} else {
		b.value -= n
	}
	return b
}

func (b Bint) String() string {
	return strconv.FormatUint(uint64(b.value), 10)
}
