package huddle

import (
	"errors"
	"fmt"
)

// Kind classifies client errors so callers can react without string matching.
type Kind string

// Error kinds. Only KindTransient is retried.
const (
	KindConfig        Kind = "config"
	KindValidation    Kind = "validation"
	KindUnauthorized  Kind = "unauthorized"
	KindNotFound      Kind = "not_found"
	KindTransient     Kind = "transient"
	KindBadResponse   Kind = "bad_response"
	KindRequestFailed Kind = "request_failed"
)

// Error is the structured error every client operation returns on failure.
type Error struct {
	Kind     Kind
	Message  string
	Status   int // HTTP status, when a response was received
	Attempts int // attempts made, set when retries were exhausted
	cause    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Attempts > 0 {
		msg = fmt.Sprintf("%s (retries exhausted after %d attempts)", msg, e.Attempts)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the classification of err, or the empty kind for foreign errors.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return ""
}

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}
