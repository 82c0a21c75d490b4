package services

import "errors"

var (
	// ErrNotFound means a referenced food, meal or user does not exist
	// (or was soft-deleted).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers non-positive amounts, non-positive body
	// metrics and malformed date ranges.
	ErrInvalidInput = errors.New("invalid input")
)
