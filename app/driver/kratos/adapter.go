package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"session-manager/app/domain"
	"session-manager/app/port"
)

// ClientAdapter adapts the Kratos client to implement port.ProviderClient
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.ProviderClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// SignUp creates an identity via a native registration flow
func (a *ClientAdapter) SignUp(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	a.logger.Info("creating registration flow in Kratos", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos registration flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "registration_flow_create")
	}

	traits := map[string]interface{}{
		"email": email,
	}
	if name != "" {
		traits["name"] = name
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   traits,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos registration flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "registration_flow_submit")
	}

	identity, err := transformIdentity(&result.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to transform registered identity: %w", err)
	}

	a.logger.Info("identity registered successfully",
		"flow_id", flow.Id,
		"identity_id", identity.ID)

	return identity, nil
}

// SignInWithPassword authenticates via a native login flow
func (a *ClientAdapter) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	a.logger.Info("creating login flow in Kratos", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "login_flow_create")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "login_flow_submit")
	}

	session, err := transformSession(&result.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to transform session: %w", err)
	}
	if result.SessionToken != nil {
		session.Token = *result.SessionToken
	}

	a.logger.Info("login flow submitted successfully",
		"flow_id", flow.Id,
		"session_id", session.ID,
		"identity_id", session.Identity.ID)

	return session, nil
}

// SignOut revokes the session behind the given token
func (a *ClientAdapter) SignOut(ctx context.Context, sessionToken string) error {
	a.logger.Info("performing native logout", "token_present", sessionToken != "")

	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{
			SessionToken: sessionToken,
		}).
		Execute()
	if err != nil {
		a.logger.Error("kratos native logout failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformError(err, httpResp, "logout")
	}

	a.logger.Info("native logout performed successfully")
	return nil
}

// GetUser fetches the identity behind the given session token
func (a *ClientAdapter) GetUser(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	a.logger.Debug("checking session with Kratos", "token_present", sessionToken != "")

	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		a.logger.Warn("kratos session check failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "get_session")
	}

	if session.Active != nil && !*session.Active {
		return nil, domain.NewAuthError(domain.ErrCodeUnauthorized, "session is not active", nil)
	}

	if session.Identity == nil {
		return nil, domain.NewAuthError(domain.ErrCodeUnauthorized, "session has no identity", nil)
	}

	identity, err := transformIdentity(session.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to transform identity: %w", err)
	}

	a.logger.Debug("session check succeeded",
		"session_id", session.Id,
		"identity_id", identity.ID)

	return identity, nil
}

// ResetPasswordForEmail triggers a recovery flow with a completion redirect
func (a *ClientAdapter) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	a.logger.Info("creating recovery flow in Kratos",
		"email", email,
		"redirect_to", redirectTo)

	req := a.client.PublicAPI().FrontendAPI.CreateBrowserRecoveryFlow(ctx)
	if redirectTo != "" {
		req = req.ReturnTo(redirectTo)
	}

	flow, httpResp, err := req.Execute()
	if err != nil {
		a.logger.Error("kratos recovery flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformError(err, httpResp, "recovery_flow_create")
	}

	body := kratosclient.UpdateRecoveryFlowWithLinkMethod{
		Method: "link",
		Email:  email,
	}

	_, httpResp, err = a.client.PublicAPI().FrontendAPI.
		UpdateRecoveryFlow(ctx).
		Flow(flow.Id).
		UpdateRecoveryFlowBody(kratosclient.UpdateRecoveryFlowWithLinkMethodAsUpdateRecoveryFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos recovery flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformError(err, httpResp, "recovery_flow_submit")
	}

	a.logger.Info("recovery flow submitted successfully",
		"flow_id", flow.Id,
		"email", email)

	return nil
}

// transformSession maps a Kratos session to the domain session
func transformSession(session *kratosclient.Session) (*domain.Session, error) {
	if session == nil {
		return nil, fmt.Errorf("session is nil")
	}

	identity, err := transformIdentity(session.Identity)
	if err != nil {
		return nil, err
	}

	result := &domain.Session{
		ID:       session.Id,
		Identity: identity,
		Active:   session.Active == nil || *session.Active,
	}

	if session.AuthenticatedAt != nil {
		result.IssuedAt = *session.AuthenticatedAt
	}
	if session.ExpiresAt != nil {
		result.ExpiresAt = session.ExpiresAt
	}

	return result, nil
}

// transformIdentity maps a Kratos identity to the domain identity
func transformIdentity(identity *kratosclient.Identity) (*domain.Identity, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity is nil")
	}

	id, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity ID %q: %w", identity.Id, err)
	}

	result := &domain.Identity{
		ID:     id,
		Traits: make(map[string]interface{}),
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		result.Traits = traits
		if email, ok := traits["email"].(string); ok {
			result.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			result.Name = name
		}
	}

	for _, address := range identity.VerifiableAddresses {
		if address.Value == result.Email && address.Verified {
			result.Verified = true
			break
		}
	}

	return result, nil
}

// getHTTPStatus safely extracts the HTTP status code from a response
func getHTTPStatus(httpResp *http.Response) int {
	if httpResp == nil {
		return 0
	}
	return httpResp.StatusCode
}
