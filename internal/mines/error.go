package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("board dimensions must be positive")

// SizeError reports the rejected dimensions.
type SizeError struct {
	Width, Height int
}

// [SizeError] implements [error]
func (e SizeError) Error() string {
	return fmt.Sprintf("invalid board size %dx%d", e.Width, e.Height)
}

func (e SizeError) Unwrap() error {
	return ErrInvalidSize
}
