package advisory

import "errors"

var (
	// ErrNotConfigured indicates no service credential is set.
	ErrNotConfigured = errors.New("advisory service not configured")

	// ErrUnavailable indicates the service could not be reached.
	ErrUnavailable = errors.New("advisory service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("advisory request timed out")

	// ErrEmptyResponse indicates the service answered without any text.
	ErrEmptyResponse = errors.New("advisory response empty")

	// ErrServiceError indicates the service answered with a failure status
	// or a body that could not be decoded.
	ErrServiceError = errors.New("advisory service error")
)
