package vxlmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// DecodeError reports the single recoverable decode failure the
// format surfaces: the input buffer ran out before a column, or a
// span within it, could be fully read. It does not distinguish
// truncation from corruption — any structurally invalid stream
// produces one of these.
type DecodeError struct {
	X, Y   int
	Offset int
	cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vxlmap: decode failed in column (x=%d, y=%d) at offset %d: %v",
		e.X, e.Y, e.Offset, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

func newDecodeError(x, y, offset int, msg string) error {
	return &DecodeError{X: x, Y: y, Offset: offset, cause: errors.New(msg)}
}

func wrapDecodeError(x, y, offset int, cause error, msg string) error {
	return &DecodeError{X: x, Y: y, Offset: offset, cause: errors.Wrap(cause, msg)}
}
