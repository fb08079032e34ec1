package widerror

import (
	"errors"
)

// Wrap builds a new record with the given code and message and attaches
// cause as its source. Arbitrary errors are normalized through Ensure
// first; a nil cause yields a record with no source.
func Wrap(cause error, code uint32, msg Message) *Error {
	e := New(code, msg)
	if cause != nil {
		e.source = Ensure(cause)
	}

	return e
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise an Internal-kind envelope carrying the error text, with
//     no assigned code or namespace
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return E(0, DefaultMessage(err.Error()),
		WithName("internal"),
		WithKind(KindInternal),
	)
}
