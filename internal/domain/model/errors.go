package model

import "errors"

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTooManyAttempts     = errors.New("too many sign-in attempts")
	ErrTodoNotFound        = errors.New("todo not found")
	ErrSubtaskNotFound     = errors.New("subtask not found")
	ErrTitleRequired       = errors.New("todo title is required")
	ErrInvalidStatus       = errors.New("invalid todo status")
	ErrInvalidFilter       = errors.New("invalid todo filter")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrProviderUnavailable = errors.New("auth provider unavailable")
)

// ProviderError carries a rejection returned by the auth provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}
