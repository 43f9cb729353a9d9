package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies expected failure modes of core operations. Anything
// else (store unreachable, driver faults) stays an untyped error and is
// treated as fatal by the HTTP layer.
type Kind int

const (
	// KindNotFound means a quiz, attempt, question or user is absent.
	KindNotFound Kind = iota + 1
	// KindUnauthorized means a role or ownership check failed.
	KindUnauthorized
	// KindPolicyViolation covers assignment/limit/cooldown/window denials.
	KindPolicyViolation
	// KindInvalidInput covers malformed option letters and missing fields.
	KindInvalidInput
	// KindConflict covers writes racing an already-terminal state.
	KindConflict
)

type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Reason: fmt.Sprintf(format, args...)}
}

func PolicyViolation(format string, args ...any) *Error {
	return &Error{Kind: KindPolicyViolation, Reason: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Reason: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// HTTPStatus maps an error to the status code controllers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	case KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
