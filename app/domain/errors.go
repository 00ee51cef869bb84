package domain

import (
	"errors"
	"strings"
)

// Authentication and session errors
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmptyUpdate        = errors.New("profile update contains no fields")
)

// AuthError represents an identity-provider operation failure with context
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeFlowExpired        = "FLOW_EXPIRED"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeProfileRead        = "PROFILE_READ_FAILED"
	ErrCodeProfileWrite       = "PROFILE_WRITE_FAILED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeUnknown            = "UNKNOWN"
)

// tokenInvalidMarkers is the single place that knows which provider error
// texts mean the locally cached credentials are beyond repair. The provider
// only signals this condition through message content, so the heuristic
// lives here and nowhere else.
var tokenInvalidMarkers = []string{
	"invalid refresh token",
	"refresh_token_not_found",
	"refresh token not found",
}

// IsTokenInvalid reports whether err identifies the invalid/expired refresh
// token condition that requires a full local reset rather than propagation.
func IsTokenInvalid(err error) bool {
	if err == nil {
		return false
	}

	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code == ErrCodeTokenInvalid {
		return true
	}

	message := strings.ToLower(err.Error())
	for _, marker := range tokenInvalidMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}

	return false
}

// ValidationError represents validation errors with field-specific details
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
