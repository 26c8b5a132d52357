package helper

import (
	"fmt"
)

// Must is the panic-on-failure variant of a (value, error) returning call.
// Use when failure is a contract violation the caller cannot recover from.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CatchPanic runs fn and returns the error it panicked with.
// A panic value that is not an error is wrapped into one.
// Returns nil if fn returned normally.
func CatchPanic(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}
