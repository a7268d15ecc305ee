package entities

import "errors"

// Domain error taxonomy. The repository and the use cases both map onto
// these sentinels, and the HTTP layer translates them to status codes
// with errors.Is. ErrStoreUnavailable wraps the underlying transport
// error so callers can log the cause while matching the sentinel.
var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrApplicationNotFound = errors.New("application not found")
	ErrForbidden           = errors.New("operation not allowed for caller")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
