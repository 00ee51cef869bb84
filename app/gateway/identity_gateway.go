package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"session-manager/app/domain"
	"session-manager/app/port"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the usecase layer and the
// identity provider driver.
type IdentityGateway struct {
	provider port.ProviderClient
	logger   *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(provider port.ProviderClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		provider: provider,
		logger:   logger.With("component", "identity_gateway"),
	}
}

// SignUp creates a new identity with the provider
func (g *IdentityGateway) SignUp(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	g.logger.Info("signing up identity", "email", email)

	identity, err := g.provider.SignUp(ctx, email, password, name)
	if err != nil {
		g.logger.Error("failed to sign up identity",
			"email", email,
			"error", err)
		return nil, fmt.Errorf("failed to sign up identity: %w", err)
	}

	g.logger.Info("identity created successfully",
		"identity_id", identity.ID,
		"email", email)

	return identity, nil
}

// SignInWithPassword authenticates against the identity provider
func (g *IdentityGateway) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	g.logger.Info("signing in", "email", email)

	session, err := g.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		g.logger.Error("failed to sign in",
			"email", email,
			"error", err)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	g.logger.Info("signed in successfully",
		"session_id", session.ID,
		"identity_id", session.Identity.ID)

	return session, nil
}

// SignOut revokes the remote session
func (g *IdentityGateway) SignOut(ctx context.Context, sessionToken string) error {
	g.logger.Info("signing out", "token_present", sessionToken != "")

	if err := g.provider.SignOut(ctx, sessionToken); err != nil {
		g.logger.Error("failed to sign out", "error", err)
		return fmt.Errorf("failed to sign out: %w", err)
	}

	g.logger.Info("signed out successfully")
	return nil
}

// GetUser fetches the current identity from the provider
func (g *IdentityGateway) GetUser(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	g.logger.Debug("fetching current identity", "token_present", sessionToken != "")

	identity, err := g.provider.GetUser(ctx, sessionToken)
	if err != nil {
		g.logger.Warn("failed to fetch current identity", "error", err)
		return nil, fmt.Errorf("failed to fetch current identity: %w", err)
	}

	g.logger.Debug("identity fetched successfully", "identity_id", identity.ID)
	return identity, nil
}

// ResetPasswordForEmail triggers the provider-side password recovery flow
func (g *IdentityGateway) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	g.logger.Info("requesting password reset",
		"email", email,
		"redirect_to", redirectTo)

	if err := g.provider.ResetPasswordForEmail(ctx, email, redirectTo); err != nil {
		g.logger.Error("failed to request password reset",
			"email", email,
			"error", err)
		return fmt.Errorf("failed to request password reset: %w", err)
	}

	g.logger.Info("password reset requested successfully", "email", email)
	return nil
}
