package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrDestinationNotFound = errors.New("destination not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingFailed       = errors.New("booking failed")
	ErrNoDraft             = errors.New("no booking draft")

	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
