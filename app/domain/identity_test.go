package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("valid identity", func(t *testing.T) {
		id := uuid.New()
		identity, err := NewIdentity(id, "user@example.com")
		require.NoError(t, err)

		assert.Equal(t, id, identity.ID)
		assert.Equal(t, "user@example.com", identity.Email)
		assert.NotNil(t, identity.Traits)
		assert.False(t, identity.Verified)
	})

	t.Run("nil ID rejected", func(t *testing.T) {
		_, err := NewIdentity(uuid.Nil, "user@example.com")
		assert.Error(t, err)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := NewIdentity(uuid.New(), "not-an-email")
		assert.Error(t, err)
	})
}

func TestSessionIsValid(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil session", nil, false},
		{"inactive session", &Session{Active: false}, false},
		{"active without expiry", &Session{Active: true}, true},
		{"active not yet expired", &Session{Active: true, ExpiresAt: &future}, true},
		{"active but expired", &Session{Active: true, ExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsValid())
		})
	}
}

func TestSessionUserDisplayName(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@example.com", Name: "Identity Name"}

	tests := []struct {
		name string
		user *SessionUser
		want string
	}{
		{
			name: "nil user",
			user: nil,
			want: "",
		},
		{
			name: "profile display name wins",
			user: NewSessionUser(identity, &Profile{DisplayName: "Profile Name"}),
			want: "Profile Name",
		},
		{
			name: "identity name when profile name empty",
			user: NewSessionUser(identity, &Profile{}),
			want: "Identity Name",
		},
		{
			name: "identity name without profile",
			user: NewSessionUser(identity, nil),
			want: "Identity Name",
		},
		{
			name: "email as last resort",
			user: NewSessionUser(&Identity{Email: "fallback@example.com"}, nil),
			want: "fallback@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestSessionUserHasProfile(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@example.com"}

	assert.False(t, (*SessionUser)(nil).HasProfile())
	assert.False(t, NewSessionUser(identity, nil).HasProfile())
	assert.True(t, NewSessionUser(identity, &Profile{}).HasProfile())
}

func TestAuthEventHasSession(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@example.com"}

	tests := []struct {
		name  string
		event AuthEvent
		want  bool
	}{
		{"no session", AuthEvent{Kind: EventSignedOut}, false},
		{"session without identity", AuthEvent{Kind: EventTokenRefreshed, Session: &Session{}}, false},
		{"session with identity", AuthEvent{Kind: EventSignedIn, Session: &Session{Identity: identity}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.HasSession())
		})
	}
}
