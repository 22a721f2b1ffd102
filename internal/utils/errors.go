package utils

import (
	"errors"
	"net/http"
)

// Sentinel causes wrapped by AppError; match with errors.Is.
var (
	ErrNotFound           = errors.New("not_found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailExists        = errors.New("email_exists")
	ErrAccountInactive    = errors.New("account_inactive")
	ErrInvalidCategory    = errors.New("invalid_category")
	ErrInvalidVariant     = errors.New("invalid_variant")

	ErrRowVersionConflict = errors.New("row_version_conflict")

	// SendGrid, Twilio, Maps, S3
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError is what services hand back to controllers: an HTTP status and
// public code/message around the underlying cause.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, code, msg string, err error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: msg, Err: err}
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, msg, ErrNotFound)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, ErrCodeForbidden, msg, ErrForbidden)
}

func BadRequest(msg string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeInvalidPayload, msg, err)
}

// HandleAppError writes err as a response. Anything that is not an
// AppError becomes a 500 without leaking its text.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
		return
	}
	RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
}
