package models

import "net/http"

// ErrorKind classifies domain errors so the API layer can pick a status code
// without inspecting messages.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // malformed input
	KindAuth                        // bad credentials or missing token
	KindForbidden                   // authenticated but not allowed
	KindNotFound                    // entity absent
	KindConflict                    // duplicate or invalid state transition
)

// Error is the domain error type returned by services and repositories.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode maps the kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NewValidationError reports malformed input.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewAuthError reports failed authentication.
func NewAuthError(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// NewForbiddenError reports an action the actor may not perform.
func NewForbiddenError(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewConflictError reports a duplicate or an invalid state transition.
func NewConflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}
