package internal

import "github.com/pkg/errors"

// Expected failures (too few points, collinear input and so on) are returned
// as errors. A broken internal invariant is different: it means the
// triangulation itself is corrupt, and there is nothing sensible for the
// caller in between to do about it. Those panic with a TriangulateError, and
// the public API recovers them into an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Cause() error {
	return e.error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
