package internal

import "github.com/pkg/errors"

// Threading error returns through the classifier, the sweep, and assembly
// would clutter code whose control flow is otherwise a straight pipeline.
// Instead, invalid input and consistency violations panic with a wrapped
// sentinel, and the public API recovers the panic back into an error.

// Error kinds. Callers can match them with errors.Is.
var (
	// ErrInvalidSize: fewer than 3 vertices were supplied.
	ErrInvalidSize = errors.New("polygon has fewer than 3 vertices")
	// ErrDuplicateVertex: two input vertices share a coordinate.
	ErrDuplicateVertex = errors.New("duplicate vertex coordinate")
	// ErrInconsistent: the sweep finished but did not produce exactly n-3
	// diagonals, meaning the input violated a precondition (not simple, not
	// x-monotone) that the loader was supposed to guarantee.
	ErrInconsistent = errors.New("inconsistent triangulation")
)

var errorKinds = []error{ErrInvalidSize, ErrDuplicateVertex, ErrInconsistent}

// fatalf panics with kind wrapped in positional context.
func fatalf(kind error, format string, args ...interface{}) {
	panic(errors.Wrapf(kind, format, args...))
}

// RecoverError converts a panic raised by fatalf back into its error. Foreign
// panics are re-raised untouched.
func RecoverError(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		for _, kind := range errorKinds {
			if errors.Is(err, kind) {
				return err
			}
		}
	}
	panic(r)
}
