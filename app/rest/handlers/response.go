package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-manager/app/domain"
	requestvalidator "session-manager/app/utils/validator"
)

// ErrorResponse is the JSON error envelope returned by every endpoint
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// writeError maps domain errors to HTTP responses
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	var fieldErrs *requestvalidator.ValidationError
	if errors.As(err, &fieldErrs) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Code:    domain.ErrCodeValidation,
			Details: fieldErrs.Errors,
		})
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Code:  domain.ErrCodeValidation,
			Details: map[string]string{
				validationErr.Field: validationErr.Message,
			},
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Authentication required",
			Code:  domain.ErrCodeUnauthorized,
		})
	case errors.Is(err, domain.ErrEmptyUpdate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Update contains no fields",
			Code:  domain.ErrCodeValidation,
		})
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Profile not found",
			Code:  domain.ErrCodeProfileRead,
		})
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(statusForCode(authErr.Code), ErrorResponse{
			Error: authErr.Message,
			Code:  authErr.Code,
		})
	}

	logger.Error("unhandled error in request", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
		Code:  domain.ErrCodeInternal,
	})
}

// statusForCode maps auth error codes to HTTP status codes
func statusForCode(code string) int {
	switch code {
	case domain.ErrCodeInvalidCredentials, domain.ErrCodeUnauthorized, domain.ErrCodeTokenInvalid:
		return http.StatusUnauthorized
	case domain.ErrCodeUserExists:
		return http.StatusConflict
	case domain.ErrCodeFlowExpired:
		return http.StatusGone
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case domain.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
