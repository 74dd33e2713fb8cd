// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across client/store layers.
var (
	// ErrNotFound indicates the requested entity does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing, expired or rejected auth token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTimeout indicates a request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrUnavailable indicates a transport-level failure (server unreachable).
	ErrUnavailable = errors.New("server unavailable")

	// ErrStorage indicates a client-local storage failure (read/write/quota).
	ErrStorage = errors.New("storage failure")
)
