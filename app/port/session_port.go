package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import (
	"context"

	"session-manager/app/domain"
)

// SessionManager owns the client-visible notion of "current authenticated
// identity + profile" and mediates all identity-provider calls.
type SessionManager interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.SessionUser, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
	ApplyTheme(theme domain.Theme)
	RequestPasswordReset(ctx context.Context, email string) error
	Subscribe(onChange func(*domain.SessionUser)) (unsubscribe func())
	ResetAndReload(ctx context.Context) error
}

// IdentityGateway mediates identity-provider access for the usecase layer
type IdentityGateway interface {
	SignUp(ctx context.Context, email, password, name string) (*domain.Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, sessionToken string) error
	GetUser(ctx context.Context, sessionToken string) (*domain.Identity, error)
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error
}

// ProviderClient is the driver-level identity provider surface
type ProviderClient interface {
	SignUp(ctx context.Context, email, password, name string) (*domain.Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, sessionToken string) error
	GetUser(ctx context.Context, sessionToken string) (*domain.Identity, error)
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error
}

// AuthStateSource delivers provider session transitions to listeners.
// Subscribe returns a disposer that removes the listener.
type AuthStateSource interface {
	Subscribe(listener func(domain.AuthEvent)) (unsubscribe func())
}
