// Package client is a typed gRPC client for the usertags tag service.
// Transport failures are mapped to ErrUnavailable and server status codes
// back to the sentinel errors in internal/common.
package client
