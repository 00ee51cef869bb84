package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-manager/app/domain"
	"session-manager/app/port"
	requestvalidator "session-manager/app/utils/validator"
)

// ProfileHandler exposes profile and presentation operations over HTTP
type ProfileHandler struct {
	sessions  port.SessionManager
	presenter port.ThemePresenter
	validator *requestvalidator.Validator
	logger    *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(sessions port.SessionManager, presenter port.ThemePresenter, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		sessions:  sessions,
		presenter: presenter,
		validator: requestvalidator.New(),
		logger:    logger.With("component", "profile_handler"),
	}
}

// UpdateProfileRequest is the payload for partial profile updates
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,currency"`
	Theme       *string `json:"theme,omitempty" validate:"omitempty,theme"`
	NotifyEmail *bool   `json:"notify_email,omitempty"`
	NotifyPush  *bool   `json:"notify_push,omitempty"`
}

// ThemeRequest is the payload for switching the presentation theme
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,theme"`
}

// UpdateProfile handles PUT /v1/user/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  domain.ErrCodeValidation,
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return writeError(c, h.logger, err)
	}

	update := domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Currency:    req.Currency,
		NotifyEmail: req.NotifyEmail,
		NotifyPush:  req.NotifyPush,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		update.Theme = &theme
	}

	profile, err := h.sessions.UpdateProfile(c.Request().Context(), update)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ApplyTheme handles POST /v1/user/theme
func (h *ProfileHandler) ApplyTheme(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  domain.ErrCodeValidation,
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return writeError(c, h.logger, err)
	}

	h.sessions.ApplyTheme(domain.Theme(req.Theme))

	return c.JSON(http.StatusOK, map[string]string{
		"requested": req.Theme,
		"active":    string(h.presenter.ActiveTheme()),
	})
}
