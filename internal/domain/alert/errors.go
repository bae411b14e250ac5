package alert

import "errors"

var (
	// ErrAlertNotFound indicates the alert doesn't exist.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrInvalidInput indicates invalid input for alert operations.
	ErrInvalidInput = errors.New("invalid alert input")
)
