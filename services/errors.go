package services

import "errors"

// Sentinel errors shared by the service packages; handlers map them to HTTP statuses.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrNotAcceptable = errors.New("not acceptable")
	ErrUnavailable   = errors.New("temporarily unavailable")
)
