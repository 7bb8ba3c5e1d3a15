package internal

import "github.com/pkg/errors"

// The core functions are pure and most of them cannot fail, so rather than
// give every one of them an error return, the few failure paths panic with a
// RadialError and the public API recovers to convert it to an error. Any other
// panic, including runtime errors, is a bug and keeps propagating.

type RadialError struct {
	error
}

func (e RadialError) Unwrap() error {
	return e.error
}

// For errors.Cause
func (e RadialError) Cause() error {
	return errors.Cause(e.error)
}

// Returned (wrapped) when a centroid is requested for zero points.
var ErrEmptyInput = errors.New("empty input")

// Panic with a RadialError.
func fatalf(format string, args ...interface{}) {
	panic(RadialError{errors.Errorf(format, args...)})
}

// Panic with err wrapped in a RadialError, keeping err visible to errors.Is.
func throw(err error, message string) {
	panic(RadialError{errors.Wrap(err, message)})
}

func HandleRadialPanicRecover(r interface{}) error {
	if r != nil {
		if radialError, ok := r.(RadialError); ok {
			return radialError
		}
		panic(r)
	}
	return nil
}
