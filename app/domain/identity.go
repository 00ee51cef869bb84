package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Identity is the provider-owned identity record. The client holds a cached
// copy only for the lifetime of the session.
type Identity struct {
	ID       uuid.UUID              `json:"id"`
	Email    string                 `json:"email"`
	Name     string                 `json:"name,omitempty"`
	Traits   map[string]interface{} `json:"traits,omitempty"`
	Verified bool                   `json:"verified"`
}

// NewIdentity creates an identity with validation
func NewIdentity(id uuid.UUID, email string) (*Identity, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	return &Identity{
		ID:     id,
		Email:  email,
		Traits: make(map[string]interface{}),
	}, nil
}

// Session represents an authenticated provider session
type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"-"` // Exclude from JSON
	Identity  *Identity  `json:"identity"`
	Active    bool       `json:"active"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// IsValid returns true if the session is active and not expired
func (s *Session) IsValid() bool {
	if s == nil || !s.Active {
		return false
	}
	if s.ExpiresAt != nil && time.Now().After(*s.ExpiresAt) {
		return false
	}
	return true
}

// SessionUser is the merged view of an Identity and its optional Profile.
// It is recomputed on every fetch and never persisted. A SessionUser with no
// profile is valid; profile presence is orthogonal to session validity.
type SessionUser struct {
	Identity *Identity `json:"identity"`
	Profile  *Profile  `json:"profile,omitempty"`
}

// NewSessionUser merges an identity with an optional profile
func NewSessionUser(identity *Identity, profile *Profile) *SessionUser {
	return &SessionUser{
		Identity: identity,
		Profile:  profile,
	}
}

// HasProfile returns true if the auxiliary profile record was available
func (u *SessionUser) HasProfile() bool {
	return u != nil && u.Profile != nil
}

// DisplayName returns the best available display name for the user
func (u *SessionUser) DisplayName() string {
	if u == nil || u.Identity == nil {
		return ""
	}
	if u.Profile != nil && u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}
	if u.Identity.Name != "" {
		return u.Identity.Name
	}
	return u.Identity.Email
}
