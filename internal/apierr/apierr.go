// Package apierr defines the request-scoped error taxonomy exposed by the
// API layer. Every failure a client can see is one of these values; anything
// else is reported as a generic internal error.
package apierr

import "net/http"

// APIError is an error with a fixed HTTP status and a client-safe message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrValidation reports a missing or malformed input field.
func NewErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewErrEmailTaken reports a signup attempt for an existing account.
func NewErrEmailTaken() *APIError {
	return &APIError{Status: http.StatusConflict, Message: "User already exists"}
}

// NewErrInvalidCredentials reports a failed login. The message is
// deliberately identical for unknown accounts and wrong passwords so the
// response never reveals whether an email is registered.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
}

// NewErrMissingToken reports a protected request without a bearer token.
func NewErrMissingToken() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Access denied, no token provided"}
}

// NewErrInvalidToken reports a token that failed signature or expiry checks.
func NewErrInvalidToken() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Invalid token"}
}

// NewErrUserNotFound reports a profile lookup for a vanished account.
func NewErrUserNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "User not found"}
}
