package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleBuildPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleBuildPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf(ErrInvalidDomain, "kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!: invalid domain")
		assert.True(t, errors.Is(err, ErrInvalidDomain))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestThrow(t *testing.T) {
	err := catchBuildError(func() { Throw(errors.New("division by zero")) })
	assert.True(t, errors.Is(err, ErrEvaluation))
	assert.Contains(t, err.Error(), "division by zero")

	assert.NotPanics(t, func() { Throw(nil) })
}

// Helpers

// Run fn and return the BuildError it panicked with, if any.
func catchBuildError(fn func()) (err error) {
	defer func() {
		err = HandleBuildPanicRecover(recover())
	}()
	fn()
	return nil
}
