// Package serrors attaches a semantic kind to errors. Services return kinds
// such as ErrNotFound or ErrBadRequest, and the HTTP layer turns each kind
// into a status code without inspecting messages.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates them.
type Kind interface {
	error
	kind()
}

type kindName string

func (k kindName) Error() string { return string(k) }
func (kindName) kind()           {}

// NewKind returns a sentinel for name. Kinds with equal names are equal.
func NewKind(name string) Kind { return kindName(name) }

// Kinds understood by the HTTP layer.
var (
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrConflict     = NewKind("CONFLICT")
	ErrRateLimited  = NewKind("RATE_LIMITED")
	ErrInternal     = NewKind("INTERNAL")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrTimeout      = NewKind("TIMEOUT")
)

// KindOf returns the first kind found in err's tree.
func KindOf(err error) (Kind, bool) {
	var k Kind
	if err == nil || !errors.As(err, &k) {
		return nil, false
	}

	return k, true
}

// Error is a kind plus an optional client-facing message and an optional
// cause. errors.Is and errors.As see both the kind and the cause.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap is With that also records cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly returns an error of kind k without message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var text string
	switch {
	case e.msg != "":
		text = e.msg
	case e.cause == nil && e.kind != nil:
		return e.kind.Error()
	case e.cause == nil:
		return "unknown error"
	}
	if e.cause != nil {
		if text == "" {
			return e.cause.Error()
		}
		text += ": " + e.cause.Error()
	}

	return text
}

// Unwrap exposes the kind first so KindOf prefers it over kinds in the cause.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}

	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}

	return errs
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.cause }
