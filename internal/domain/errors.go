package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing license plate, negative equipment count).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnavailable is returned when an optional external collaborator (the
// damage-description summarizer) is not configured or cannot be reached.
// Handlers should map this to HTTP 503.
var ErrUnavailable = errors.New("unavailable")
