package domain

// AuthEventKind identifies a provider session transition
type AuthEventKind string

const (
	EventSignedIn       AuthEventKind = "signed_in"
	EventSignedOut      AuthEventKind = "signed_out"
	EventTokenRefreshed AuthEventKind = "token_refreshed"
)

// AuthEvent is delivered to subscribers when the identity provider reports a
// session transition. Session is nil for signed-out transitions, and for the
// token-refreshed-without-session condition that forces a local reset.
type AuthEvent struct {
	Kind    AuthEventKind `json:"kind"`
	Session *Session      `json:"session,omitempty"`
}

// HasSession returns true when the event carries an active session
func (e AuthEvent) HasSession() bool {
	return e.Session != nil && e.Session.Identity != nil
}
