package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when inserting an entity whose identity
	// already exists
	ErrDuplicate = errors.New("duplicate identity")
)
