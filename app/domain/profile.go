package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// NotificationSettings holds notification channel toggles
type NotificationSettings struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// Profile is the mutable record keyed 1:1 by identity ID. It is owned by the
// backend data store; the client reads and writes it via point queries.
type Profile struct {
	ID            uuid.UUID            `json:"id"`
	Email         string               `json:"email"`
	DisplayName   string               `json:"display_name"`
	AvatarURL     string               `json:"avatar_url,omitempty"`
	Currency      string               `json:"currency"`
	Theme         Theme                `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NewProfile creates a profile row for a freshly registered identity
func NewProfile(identityID uuid.UUID, email, displayName string) (*Profile, error) {
	if identityID == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	now := time.Now()

	return &Profile{
		ID:          identityID,
		Email:       email,
		DisplayName: displayName,
		Currency:    "USD",
		Theme:       ThemeAuto,
		Notifications: NotificationSettings{
			Email: true,
			Push:  false,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ProfileUpdate is a partial update to a profile row. Nil fields are left
// untouched by the write.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	Theme       *Theme  `json:"theme,omitempty"`
	NotifyEmail *bool   `json:"notify_email,omitempty"`
	NotifyPush  *bool   `json:"notify_push,omitempty"`
}

// IsEmpty returns true when no field is set
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil &&
		u.AvatarURL == nil &&
		u.Currency == nil &&
		u.Theme == nil &&
		u.NotifyEmail == nil &&
		u.NotifyPush == nil
}

// Validate checks the fields that carry constraints
func (u ProfileUpdate) Validate() error {
	if u.Theme != nil && !u.Theme.Valid() {
		return NewValidationError("theme", *u.Theme, fmt.Sprintf("unsupported theme: %s", *u.Theme))
	}
	return nil
}

// ApplyTo applies the set fields onto a profile and stamps UpdatedAt
func (u ProfileUpdate) ApplyTo(p *Profile) {
	if u.DisplayName != nil {
		p.DisplayName = *u.DisplayName
	}
	if u.AvatarURL != nil {
		p.AvatarURL = *u.AvatarURL
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.NotifyEmail != nil {
		p.Notifications.Email = *u.NotifyEmail
	}
	if u.NotifyPush != nil {
		p.Notifications.Push = *u.NotifyPush
	}
	p.UpdatedAt = time.Now()
}
