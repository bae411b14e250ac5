package application

import "errors"

var (
	// ErrNotFound indicates the application doesn't exist.
	ErrNotFound = errors.New("application not found")
	// ErrInvalidStatus indicates an unknown workflow status.
	ErrInvalidStatus = errors.New("invalid application status")
	// ErrInvalidDate indicates a date value that cannot be parsed.
	ErrInvalidDate = errors.New("invalid date value")
	// ErrInvalidInput indicates invalid input for application operations.
	ErrInvalidInput = errors.New("invalid application input")
)
