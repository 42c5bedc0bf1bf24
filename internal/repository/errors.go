package repository

import "errors"

var (
	// ErrInvalidArgument is returned for nil entities and malformed identifiers
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when no record exists for an entity
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is returned for operations a store does not offer
	ErrUnsupported = errors.New("operation not supported")
)
