package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Error codes returned in the "code" field of every error body.
const (
	ErrCodeInvalidPayload         = "invalid_payload"
	ErrCodeValidation             = "validation_error"
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeForbidden              = "forbidden"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeInvalidCredentials     = "invalid_credentials"
	ErrCodeLockedAccount          = "locked_account"
	ErrCodeInternal               = "internal_server_error"
	ErrCodeNotFound               = "not_found"
	ErrCodeConflict               = "conflict"
	ErrCodeRowVersionConflict     = "row_version_conflict"
	ErrCodeExternalServiceFailure = "external_service_failure"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondErrorWithCode writes the error body. details is public, devErrs
// only reach the log. 5xx responses log at error level, the rest at warn.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details any,
	devErrs ...error,
) {
	RespondWithJSON(w, status, ErrorResponse{Code: errorCode, Message: publicMessage, Details: details})

	entry := Logger.WithFields(logrus.Fields{"status": status, "code": errorCode})
	for _, e := range devErrs {
		if e != nil {
			entry = entry.WithError(e)
			break
		}
	}
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Warn(publicMessage)
	}
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		Logger.WithError(err).Debug("response write failed")
	}
}
