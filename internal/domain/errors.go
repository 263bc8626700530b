package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Session errors
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrSessionExpired     = errors.New("session expired")
	ErrNoStoredCredential = errors.New("no stored credential")

	// Transfer errors
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrTooManyDecimals      = errors.New("amount cannot have more than 2 decimal places")
	ErrMissingSender        = errors.New("select the account to send from")
	ErrUnknownRecipient     = errors.New("unknown recipient kind")
	ErrConflictingRecipient = errors.New("transfer carries fields from more than one recipient kind")
)

// GenericFailureMessage is shown when the server gives no detail.
const GenericFailureMessage = "Request failed"

// NetworkFailureMessage is shown when no response was received.
const NetworkFailureMessage = "Network error: could not reach the server"

// ValidationError is a local, pre-network input failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}

// APIError is a non-2xx response from the remote API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (status %d)", GenericFailureMessage, e.StatusCode)
	}
	return e.Detail
}

// Unauthorized reports whether the server rejected the credential.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// NetworkError is a transport failure; no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", NetworkFailureMessage, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage renders err as the text shown in a notification.
func UserMessage(err error) string {
	var (
		vErr *ValidationError
		aErr *APIError
		nErr *NetworkError
	)

	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &aErr):
		if aErr.Detail != "" {
			return aErr.Detail
		}
		return GenericFailureMessage
	case errors.As(err, &nErr):
		return NetworkFailureMessage
	case errors.Is(err, ErrNotAuthenticated):
		return "Please sign in first"
	case errors.Is(err, ErrSessionExpired):
		return "Your session has expired, please sign in again"
	default:
		return GenericFailureMessage
	}
}
