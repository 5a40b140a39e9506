// Package common contains shared constants and sentinel errors used across
// usertags components.
package common

// RequestIDHeaderName is the HTTP header and gRPC metadata key carrying the
// request correlation id.
const RequestIDHeaderName = "x-request-id"

// DefaultDataFile is the data file used when none is configured.
const DefaultDataFile = "user_tags.json"
