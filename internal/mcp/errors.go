package mcp

import (
	"errors"
	"fmt"

	"interntrack/internal/domain/alert"
	"interntrack/internal/domain/application"
	"interntrack/internal/domain/calendar"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, application.ErrNotFound):
		return &APIError{Code: "APPLICATION_NOT_FOUND", Message: "application not found", RecoveryHint: "Check ID spelling or list_applications"}
	case errors.Is(err, application.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "invalid application status", RecoveryHint: "Use applied, interview, offer, rejected, or accepted"}
	case errors.Is(err, application.ErrInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: "unparseable date value", RecoveryHint: "Use YYYY-MM-DD or YYYY-MM-DDTHH:MM"}
	case errors.Is(err, application.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "missing or invalid input", RecoveryHint: "Check required fields"}
	case errors.Is(err, alert.ErrAlertNotFound):
		return &APIError{Code: "ALERT_NOT_FOUND", Message: "alert not found", RecoveryHint: "Check ID against list_alerts"}
	case errors.Is(err, alert.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "missing or invalid input", RecoveryHint: "Check required fields"}
	case errors.Is(err, calendar.ErrNoEvents):
		return &APIError{Code: "NO_EVENTS", Message: "no records carry an exportable date", RecoveryHint: "Add a deadline or interview date first"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
