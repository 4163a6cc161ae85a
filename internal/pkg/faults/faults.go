// internal/pkg/faults/faults.go
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies a synchronization failure
type Kind string

const (
	// Validation means bad local input; the request never reached the network
	Validation Kind = "validation_error"
	// AuthRequired means the operation needs an authenticated session
	AuthRequired Kind = "authentication_required"
	// Remote means the backend call itself failed
	Remote Kind = "remote_operation_failed"
	// NotFound means the referenced item is absent from the local store
	NotFound Kind = "not_found_locally"
)

// Error is a classified synchronization error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf creates a validation error
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// AuthRequiredf creates an authentication-required error
func AuthRequiredf(format string, args ...interface{}) *Error {
	return &Error{Kind: AuthRequired, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found-locally error
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Remotef wraps a backend failure
func Remotef(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: Remote, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of a classified error, or Remote for plain errors
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Remote
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
