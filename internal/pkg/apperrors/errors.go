package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error. Transport layers map kinds to status codes
// through StatusCode instead of inspecting individual errors.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a domain error with a fixed classification and a user-facing message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a domain error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Named domain outcomes. Every expected failure of the core operations is one
// of these; anything else is treated as an infrastructure failure.
var (
	ErrRideNotFound    = New(KindNotFound, "ride not found")
	ErrRequestNotFound = New(KindNotFound, "ride request not found")

	ErrRideInactive     = New(KindConflict, "this ride is no longer active")
	ErrSelfRequest      = New(KindConflict, "you cannot request your own ride")
	ErrRideFull         = New(KindConflict, "this ride has no available seats")
	ErrDuplicateRequest = New(KindConflict, "you have already requested this ride")
	ErrAlreadyAccepted  = New(KindConflict, "request is already accepted")
	ErrNotAccepted      = New(KindConflict, "request is not currently accepted")

	ErrNotRideDriver = New(KindForbidden, "you are not the driver of this ride")
	ErrNotRideOwner  = New(KindForbidden, "you are not allowed to modify this ride")

	ErrInvalidCredentials = New(KindUnauthorized, "invalid credentials")
	ErrUserExists         = New(KindConflict, "user already exists")
)

// InvalidInput creates an input validation error with a specific message
func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

// StatusCode returns the HTTP status for a domain error, or 500 for anything
// that is not part of the domain taxonomy.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		if code, ok := statusByKind[appErr.Kind]; ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

// IsDomain reports whether err belongs to the domain taxonomy
func IsDomain(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}
