// Package apperror holds the fixed (rc, msg) error taxonomy of the API and the
// echo error handler that renders every failure as a response envelope.
package apperror

import (
	"net/http"
)

// Uncaught is the rc used for errors outside the taxonomy
const Uncaught = -654

// Error is a domain failure with a stable code and message
type Error struct {
	RC     int
	Msg    string
	Status int
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(rc int, msg string, status int) *Error {
	return &Error{RC: rc, Msg: msg, Status: status}
}

var (
	ErrMissingCredentials = newError(-401, "Authentication credentials were not provided.", http.StatusUnauthorized)
	ErrMalformedAPIKey    = newError(-401, "API Key invalido", http.StatusUnauthorized)
	ErrUnknownAPIKey      = newError(-401, "API Key invalida", http.StatusUnauthorized)
	ErrInvalidAdminToken  = newError(-401, "Invalid or expired token", http.StatusUnauthorized)

	ErrNoEmployeeID    = newError(-1001, "Please enter a valid id", http.StatusOK)
	ErrInvalidEmployee = newError(-1002, "Invalid id", http.StatusOK)
	ErrDuplicatedPin   = newError(-1003, "Duplicated PIN", http.StatusOK)
	ErrIncompleteData  = newError(-1004, "Incomplete data", http.StatusOK)
)
