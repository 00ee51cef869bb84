package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-manager/app/domain"
	"session-manager/app/port"
	requestvalidator "session-manager/app/utils/validator"
)

// SessionHandler exposes the session lifecycle over HTTP
type SessionHandler struct {
	sessions  port.SessionManager
	validator *requestvalidator.Validator
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions port.SessionManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		validator: requestvalidator.New(),
		logger:    logger.With("component", "session_handler"),
	}
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RecoverRequest is the payload for requesting a password reset
type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Register handles POST /v1/auth/register
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  domain.ErrCodeValidation,
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return writeError(c, h.logger, err)
	}

	identity, err := h.sessions.Register(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, identity)
}

// Login handles POST /v1/auth/login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  domain.ErrCodeValidation,
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return writeError(c, h.logger, err)
	}

	session, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	// The token travels in a header; the session body excludes it
	c.Response().Header().Set("X-Session-Token", session.Token)
	return c.JSON(http.StatusOK, session)
}

// Logout handles POST /v1/auth/logout
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return writeError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CurrentUser handles GET /v1/auth/me. A missing session is not an error;
// it answers 204 so clients can distinguish "signed out" from failures.
func (h *SessionHandler) CurrentUser(c echo.Context) error {
	user, err := h.sessions.CurrentUser(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if user == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, user)
}

// Recover handles POST /v1/auth/recover
func (h *SessionHandler) Recover(c echo.Context) error {
	var req RecoverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  domain.ErrCodeValidation,
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.sessions.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return writeError(c, h.logger, err)
	}

	// Whether the address exists stays private
	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "If the address is registered, a recovery email has been sent",
	})
}
