package feed

import (
	"errors"
	"fmt"
)

const (
	DefaultSize = 20
	MaxSize     = 50
)

// Fails to compile if DefaultSize exceeds MaxSize.
const _ = uint(MaxSize - DefaultSize)

var (
	ErrSizeZero       = errors.New("size must be non-zero")
	ErrSizeExceedsMax = errors.New("size must not exceed the max size")
)

// Size is the number of credits a feed returns, between 1 and MaxSize.
// The zero value behaves as DefaultSize.
type Size struct {
	n int
}

// NewSize rejects zero and values above MaxSize; oversized values are not
// clamped.
func NewSize(n int) (Size, error) {
	switch {
	case n == 0:
		return Size{}, ErrSizeZero
	case n < 0:
		return Size{}, fmt.Errorf("size %d: must be positive", n)
	case n > MaxSize:
		return Size{}, fmt.Errorf("size %d: %w (%d)", n, ErrSizeExceedsMax, MaxSize)
	}
	return Size{n: n}, nil
}

func (s Size) Int() int {
	if s.n == 0 {
		return DefaultSize
	}
	return s.n
}
