package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain or service failure so the HTTP boundary can map it
// to a status code without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAccessDenied
	KindAuthentication
	KindState
	KindDuplicateEmail
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAccessDenied:
		return "access_denied"
	case KindAuthentication:
		return "authentication"
	case KindState:
		return "state"
	case KindDuplicateEmail:
		return "duplicate_email"
	default:
		return "unknown"
	}
}

// Error is a typed application error. The zero value is not usable; construct
// through the kind helpers below.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func AccessDeniedf(format string, args ...any) *Error {
	return newf(KindAccessDenied, format, args...)
}

func Authenticationf(format string, args ...any) *Error {
	return newf(KindAuthentication, format, args...)
}

func Statef(format string, args ...any) *Error {
	return newf(KindState, format, args...)
}

func DuplicateEmailf(format string, args ...any) *Error {
	return newf(KindDuplicateEmail, format, args...)
}

// KindOf returns the Kind carried by err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind()
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
