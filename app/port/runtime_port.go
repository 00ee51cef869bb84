package port

//go:generate mockgen -source=runtime_port.go -destination=../mocks/mock_runtime_port.go -package=mocks

import (
	"context"

	"session-manager/app/domain"
)

// CredentialStore is a local persistence surface holding cached session
// credentials. It is best-effort only; callers must tolerate failures.
type CredentialStore interface {
	Name() string
	StoreToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// ThemePresenter is the presentation context: it holds the active visual
// theme and exposes the ambient system preference.
type ThemePresenter interface {
	SetTheme(theme domain.Theme)
	ActiveTheme() domain.Theme
	SystemPreference() domain.Theme
}

// Reloader forces the running client to reinitialize from scratch. It is the
// terminal recovery path for unrecoverable local credential corruption.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ReloadFunc adapts a function to the Reloader interface
type ReloadFunc func(ctx context.Context) error

func (f ReloadFunc) Reload(ctx context.Context) error {
	return f(ctx)
}
