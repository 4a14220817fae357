package login

import "errors"

// Failure taxonomy for the authentication flows. Submit failures are handled
// locally by the login screen and never propagate further; mid-session
// rejections are the transport invalidator's business, not this package's.
var (
	// ErrInvalidCredentials - the backend rejected the username/password.
	// Recoverable: the user retries.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied - the account exists but is disabled. Recoverable only
	// by an administrator out-of-band.
	ErrAccessDenied = errors.New("access denied")

	// ErrServiceUnavailable - the authenticator could not be reached or
	// answered unusably. Recoverable by retry.
	ErrServiceUnavailable = errors.New("authentication service unavailable")

	// ErrUsernameTaken - registration rejected because the username exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnknownUsername - no account with that username.
	ErrUnknownUsername = errors.New("username not found")
)
