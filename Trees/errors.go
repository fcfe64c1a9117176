package Trees

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Every error returned by this package is marked with exactly one
// of them; test with errors.Is.
var (
	// ErrInvalidArgument is returned for out-of-range parameters such as a
	// generator height, or a value domain that can't satisfy a request.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedInput is returned for lists that don't describe a tree and
	// for node graphs that aren't trees.
	ErrMalformedInput = errors.New("malformed input")
	// ErrIndexOutOfRange is returned when a level-order index addresses no node.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrStructuralConflict is returned when a subtree can't be attached.
	ErrStructuralConflict = errors.New("structural conflict")
)

func markf(kind error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), kind)
}
