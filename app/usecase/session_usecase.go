package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"session-manager/app/domain"
	"session-manager/app/port"
)

// SessionUseCase implements port.SessionManager. It is the single owner of
// the client's notion of "current authenticated identity + profile": every
// provider call, every credential cache and the presentation theme are
// mediated here.
type SessionUseCase struct {
	identity      port.IdentityGateway
	profiles      port.ProfileRepository
	stores        []port.CredentialStore
	events        port.AuthStateSource
	presenter     port.ThemePresenter
	reloader      port.Reloader
	resetRedirect string
	logger        *slog.Logger

	mu      sync.RWMutex
	current *domain.Identity
	token   string

	reloading atomic.Bool
}

// Deps bundles the collaborators of the session use case
type Deps struct {
	Identity      port.IdentityGateway
	Profiles      port.ProfileRepository
	Stores        []port.CredentialStore
	Events        port.AuthStateSource
	Presenter     port.ThemePresenter
	Reloader      port.Reloader
	ResetRedirect string
	Logger        *slog.Logger
}

// NewSessionUseCase creates the session manager
func NewSessionUseCase(deps Deps) *SessionUseCase {
	return &SessionUseCase{
		identity:      deps.Identity,
		profiles:      deps.Profiles,
		stores:        deps.Stores,
		events:        deps.Events,
		presenter:     deps.Presenter,
		reloader:      deps.Reloader,
		resetRedirect: deps.ResetRedirect,
		logger:        deps.Logger.With("component", "session_usecase"),
	}
}

// Register creates a new identity at the provider and seeds its profile row.
// The profile insert is best-effort: once the identity exists remotely,
// registration has succeeded and a failed insert must not undo it.
func (uc *SessionUseCase) Register(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	uc.logger.Info("registering user", "email", email)

	identity, err := uc.identity.SignUp(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}

	profile, err := domain.NewProfile(identity.ID, email, displayName)
	if err != nil {
		uc.logger.Warn("skipping profile seed for new identity",
			"identity_id", identity.ID,
			"error", err)
		return identity, nil
	}

	if err := uc.profiles.Create(ctx, profile); err != nil {
		uc.logger.Warn("profile seed failed after registration",
			"identity_id", identity.ID,
			"error", err)
	}

	return identity, nil
}

// Login authenticates with email and password, caches the session token in
// every credential store and records the identity as current. Cache writes
// are best-effort.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	uc.logger.Info("logging in user", "email", email)

	session, err := uc.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	uc.setCurrent(session.Identity, session.Token)

	for _, store := range uc.stores {
		if err := store.StoreToken(ctx, session.Token); err != nil {
			uc.logger.Warn("failed to cache session token",
				"store", store.Name(),
				"error", err)
		}
	}

	return session, nil
}

// Logout clears every local credential cache first, then revokes the session
// at the provider. Local eviction is best-effort; the remote sign-out is the
// operation of record.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	token := uc.currentToken()

	for _, store := range uc.stores {
		if err := store.Clear(ctx); err != nil {
			uc.logger.Warn("failed to clear credential store on logout",
				"store", store.Name(),
				"error", err)
		}
	}

	if err := uc.identity.SignOut(ctx, token); err != nil {
		return err
	}

	uc.setCurrent(nil, "")
	uc.logger.Info("user logged out")
	return nil
}

// CurrentUser resolves the current session into a merged identity + profile
// view. Absence of a session is not an error: when no credentials are cached,
// or the provider rejects them, the result is (nil, nil). Invalidated refresh
// credentials additionally trigger a full local reset.
func (uc *SessionUseCase) CurrentUser(ctx context.Context) (*domain.SessionUser, error) {
	token := uc.currentToken()
	if token == "" {
		token = uc.cachedToken(ctx)
	}
	if token == "" {
		return nil, nil
	}

	identity, err := uc.identity.GetUser(ctx, token)
	if err != nil {
		if domain.IsTokenInvalid(err) {
			uc.logger.Warn("session credentials invalidated, resetting local state", "error", err)
			if resetErr := uc.ResetAndReload(ctx); resetErr != nil {
				uc.logger.Error("reset after invalid credentials failed", "error", resetErr)
			}
			return nil, nil
		}

		uc.logger.Debug("no active session", "error", err)
		return nil, nil
	}

	uc.setCurrent(identity, token)

	return domain.NewSessionUser(identity, uc.fetchProfile(ctx, identity.ID)), nil
}

// UpdateProfile applies a partial update to the current user's profile row.
// Unlike reads, profile writes require an authenticated user and surface
// their failures.
func (uc *SessionUseCase) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	uc.mu.RLock()
	current := uc.current
	uc.mu.RUnlock()

	if current == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if update.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	if err := update.Validate(); err != nil {
		return nil, err
	}

	profile, err := uc.profiles.Update(ctx, current.ID, update)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrCodeProfileWrite, "failed to update profile", err)
	}

	if update.Theme != nil {
		uc.ApplyTheme(*update.Theme)
	}

	return profile, nil
}

// ApplyTheme switches the presentation context to the given theme. Auto is
// resolved against the ambient system preference at call time; unsupported
// names are ignored so the active theme is never clobbered by bad input.
func (uc *SessionUseCase) ApplyTheme(theme domain.Theme) {
	if !theme.Valid() {
		uc.logger.Debug("ignoring unsupported theme", "theme", theme)
		return
	}

	resolved := theme
	if !theme.Concrete() {
		resolved = theme.Resolve(uc.presenter.SystemPreference())
	}

	uc.presenter.SetTheme(resolved)
	uc.logger.Info("theme applied", "requested", theme, "resolved", resolved)
}

// RequestPasswordReset asks the provider to send a recovery email. Whether
// the address exists is the provider's concern; only transport failures
// surface.
func (uc *SessionUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	return uc.identity.ResetPasswordForEmail(ctx, email, uc.resetRedirect)
}

// Subscribe registers a callback for session transitions and returns a
// disposer that removes it. The callback receives the merged session user,
// or nil when the session ended.
func (uc *SessionUseCase) Subscribe(onChange func(*domain.SessionUser)) func() {
	return uc.events.Subscribe(func(event domain.AuthEvent) {
		uc.handleAuthEvent(event, onChange)
	})
}

// handleAuthEvent reconciles local state with a provider session transition
func (uc *SessionUseCase) handleAuthEvent(event domain.AuthEvent, onChange func(*domain.SessionUser)) {
	ctx := context.Background()

	// A token refresh that produced no session means the stored refresh
	// credentials are unusable. Recover instead of notifying.
	if event.Kind == domain.EventTokenRefreshed && !event.HasSession() {
		uc.logger.Warn("token refresh produced no session, resetting local state")
		if err := uc.ResetAndReload(ctx); err != nil {
			uc.logger.Error("reset after failed token refresh failed", "error", err)
		}
		return
	}

	if !event.HasSession() {
		uc.setCurrent(nil, "")
		onChange(nil)
		return
	}

	uc.setCurrent(event.Session.Identity, event.Session.Token)

	// The profile fetch goes to the network; deliver off the event
	// goroutine so a slow store cannot stall the source.
	go func() {
		profile := uc.fetchProfile(ctx, event.Session.Identity.ID)
		onChange(domain.NewSessionUser(event.Session.Identity, profile))
	}()
}

// ResetAndReload wipes every local credential cache, drops in-memory session
// state and reinitializes the client. Each cleanup step is guarded so one
// failing store cannot block the rest, and concurrent triggers collapse into
// the first reset.
func (uc *SessionUseCase) ResetAndReload(ctx context.Context) error {
	if !uc.reloading.CompareAndSwap(false, true) {
		uc.logger.Debug("reset already in progress")
		return nil
	}
	defer uc.reloading.Store(false)

	uc.logger.Warn("resetting local authentication state")

	for _, store := range uc.stores {
		uc.clearStoreGuarded(ctx, store)
	}

	uc.setCurrent(nil, "")

	if err := uc.reloader.Reload(ctx); err != nil {
		uc.logger.Error("client reinitialization failed", "error", err)
		return fmt.Errorf("failed to reinitialize client: %w", err)
	}

	uc.logger.Info("local authentication state reset")
	return nil
}

// clearStoreGuarded clears one credential store, containing both errors and
// panics so the remaining cleanup steps always run.
func (uc *SessionUseCase) clearStoreGuarded(ctx context.Context, store port.CredentialStore) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("credential cleanup panicked",
				"store", store.Name(),
				"panic", r)
		}
	}()

	if err := store.Clear(ctx); err != nil {
		uc.logger.Warn("credential cleanup failed",
			"store", store.Name(),
			"error", err)
	}
}

// fetchProfile reads the profile row for an identity. Profile reads are
// best-effort; a missing or unreachable row degrades to an identity-only
// view.
func (uc *SessionUseCase) fetchProfile(ctx context.Context, id uuid.UUID) *domain.Profile {
	profile, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warn("profile fetch failed, continuing without profile",
			"identity_id", id,
			"error", err)
		return nil
	}
	return profile
}

// cachedToken returns the first token found across the credential stores
func (uc *SessionUseCase) cachedToken(ctx context.Context) string {
	for _, store := range uc.stores {
		token, err := store.Token(ctx)
		if err != nil {
			uc.logger.Debug("failed to read cached token",
				"store", store.Name(),
				"error", err)
			continue
		}
		if token != "" {
			return token
		}
	}
	return ""
}

func (uc *SessionUseCase) setCurrent(identity *domain.Identity, token string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.current = identity
	uc.token = token
}

func (uc *SessionUseCase) currentToken() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.token
}
