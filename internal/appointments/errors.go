package appointments

import "errors"

var (
	// ErrMissingFields is returned when a create request lacks a required field
	ErrMissingFields = errors.New("appointments: missing required fields")

	// ErrNotFound is returned when no appointment exists with the given id
	ErrNotFound = errors.New("appointments: appointment not found")
)
