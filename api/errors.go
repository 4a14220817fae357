package api

import "errors"

var (
	// ErrSessionExpired - a previously valid credential was rejected. By the
	// time a caller sees this the global invalidator has already torn the
	// session down and navigation is on its way back to login, so views treat
	// it as "stop rendering", not as something to handle.
	ErrSessionExpired = errors.New("session expired")

	// ErrInsufficientRole - authenticated but lacking the capability. Always
	// handled locally by the calling view (hide the action, show a message)
	// and never clears the session.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrNotFound - the resource does not exist.
	ErrNotFound = errors.New("not found")
)
