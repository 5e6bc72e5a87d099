package advanced

import "github.com/pkg/errors"

// Threading errors through every sampling and normalization helper would add a
// lot of noise to what are otherwise tight numeric loops. Instead, we panic
// with a BuildError, and the entry points recover to convert it to an error.

type BuildError struct {
	err error
}

func (e BuildError) Error() string { return e.err.Error() }

func (e BuildError) Unwrap() error { return e.err }

// Panic with a BuildError wrapping one of the sentinel errors.
func fatalf(kind error, format string, args ...interface{}) {
	panic(BuildError{errors.Wrapf(kind, format, args...)})
}

// Throw aborts the build in progress with err. It is meant for callbacks, such
// as compiled expressions, that can fail while the sampler is running.
func Throw(err error) {
	if err == nil {
		return
	}
	if _, ok := err.(BuildError); ok {
		panic(err)
	}
	panic(BuildError{errors.Wrap(ErrEvaluation, err.Error())})
}

// Convert the value returned by recover() into an error. Anything that is not
// a BuildError is a real bug, so it keeps panicking.
func HandleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if buildError, ok := r.(BuildError); ok {
			return buildError
		}
		panic(r)
	}
	return nil
}
