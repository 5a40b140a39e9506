package common

import "errors"

// Callers should match these values with errors.Is; layers wrap them with
// additional context using fmt.Errorf("...: %w", err).
var (
	// Store/service level outcomes.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Input errors (blank user or tag ids, malformed payloads).
	ErrorValidation = errors.New("validation error")

	// Anything the transports should not describe to the caller.
	ErrorInternal = errors.New("internal error")
)
