package authstate

import "errors"

var (
	// ErrInvalidCredentials indicates the identifier/secret pair was rejected.
	// It is surfaced to the user and recoverable by retrying login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOperationInFlight indicates a Login or Initialize call overlapped
	// with one already running. The second call is rejected, not queued.
	ErrOperationInFlight = errors.New("auth operation already in flight")

	// ErrAlreadyAuthenticated indicates Login was called on a live session.
	// Re-login requires an explicit Logout first.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)
