package ports

import "context"

// SessionProvider exposes the authenticated courier identity. Both methods
// return empty values when no session is active; callers that require a
// session translate that into an AuthenticationRequiredError, while the
// transition client simply omits the bearer header.
type SessionProvider interface {
	// CurrentUserID returns the courier's user ID, empty when logged out.
	CurrentUserID() string

	// FreshIDToken obtains a fresh bearer token for the active session.
	// Tokens are never cached by callers; a new one is requested per call.
	FreshIDToken(ctx context.Context) (string, error)
}

// ConnectivityProbe checks for network reachability before an outbound call
// is attempted. Entry points that probe translate a negative answer into a
// NetworkUnavailableError instead of letting the call fail slowly.
type ConnectivityProbe interface {
	Online(ctx context.Context) bool
}
