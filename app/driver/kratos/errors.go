package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"session-manager/app/domain"
)

// transformError transforms Kratos API errors to domain errors
func (a *ClientAdapter) transformError(err error, httpResp *http.Response, operation string) error {
	a.logger.Debug("transforming kratos error",
		"error", err,
		"operation", operation,
		"http_status", getHTTPStatus(httpResp))

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if classified := a.parseGenericError(kratosErr, operation); classified != nil {
			return classified
		}
	}

	if httpResp != nil {
		return a.parseHTTPStatusError(httpResp.StatusCode, operation, err)
	}

	return domain.NewAuthError(domain.ErrCodeServiceUnavailable, fmt.Sprintf("Kratos %s failed", operation), err)
}

// parseGenericError parses a Kratos GenericOpenAPIError body
func (a *ClientAdapter) parseGenericError(kratosErr *kratosclient.GenericOpenAPIError, operation string) error {
	body := kratosErr.Body()

	var errorResp map[string]interface{}
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr != nil {
		return classifyErrorMessage(string(body), operation)
	}

	// UI messages carry the most specific failure text
	if ui, ok := errorResp["ui"].(map[string]interface{}); ok {
		if err := parseUIMessages(ui, operation); err != nil {
			return err
		}
	}

	if message, ok := errorResp["message"].(string); ok {
		return classifyErrorMessage(message, operation)
	}

	if reason, ok := errorResp["reason"].(string); ok {
		return classifyErrorMessage(reason, operation)
	}

	if errorObj, ok := errorResp["error"].(map[string]interface{}); ok {
		if message, ok := errorObj["message"].(string); ok {
			return classifyErrorMessage(message, operation)
		}
	}

	return nil
}

// parseUIMessages walks the flow UI for failure messages
func parseUIMessages(ui map[string]interface{}, operation string) error {
	if messages, ok := ui["messages"].([]interface{}); ok {
		for _, msg := range messages {
			if msgMap, ok := msg.(map[string]interface{}); ok {
				if text, ok := msgMap["text"].(string); ok {
					if err := classifyErrorMessage(text, operation); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// parseHTTPStatusError maps HTTP status codes to domain errors
func (a *ClientAdapter) parseHTTPStatusError(statusCode int, operation string, originalErr error) error {
	switch statusCode {
	case http.StatusBadRequest:
		return domain.NewAuthError(domain.ErrCodeValidation, "Invalid request data", originalErr)
	case http.StatusUnauthorized:
		return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Authentication failed", originalErr)
	case http.StatusForbidden:
		return domain.NewAuthError(domain.ErrCodeUnauthorized, "Access denied", originalErr)
	case http.StatusNotFound:
		return domain.NewAuthError(domain.ErrCodeUnknown, "Resource not found", originalErr)
	case http.StatusConflict:
		return domain.NewAuthError(domain.ErrCodeUserExists, "User already exists", originalErr)
	case http.StatusGone:
		return domain.NewAuthError(domain.ErrCodeFlowExpired, "Flow has expired", originalErr)
	case http.StatusUnprocessableEntity:
		return domain.NewAuthError(domain.ErrCodeValidation, "Validation failed", originalErr)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return domain.NewAuthError(domain.ErrCodeServiceUnavailable, "Service temporarily unavailable", originalErr)
	case http.StatusGatewayTimeout:
		return domain.NewAuthError(domain.ErrCodeTimeout, "Request timeout", originalErr)
	default:
		return domain.NewAuthError(domain.ErrCodeInternal, fmt.Sprintf("HTTP %d: %s failed", statusCode, operation), originalErr)
	}
}

// classifyErrorMessage classifies provider error text into domain errors.
// Message-content inspection is the only signal Kratos exposes for several
// of these conditions.
func classifyErrorMessage(message, operation string) error {
	messageLower := strings.ToLower(message)

	// Token invalidation: routed to the local reset path, never surfaced
	if containsAny(messageLower, []string{"invalid refresh token", "refresh_token_not_found", "refresh token not found"}) {
		return domain.NewAuthError(domain.ErrCodeTokenInvalid, "Session credentials are no longer valid", nil)
	}

	if containsAny(messageLower, []string{"already exists", "already registered", "user exists", "duplicate"}) {
		return domain.NewAuthError(domain.ErrCodeUserExists, "User with this email already exists", nil)
	}

	if containsAny(messageLower, []string{"invalid credentials", "wrong password", "authentication failed", "login failed", "credentials are invalid"}) {
		return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	}

	if containsAny(messageLower, []string{"property email is missing", "email is required", "missing email"}) {
		return domain.NewValidationError("email", nil, "Email is required")
	}

	if containsAny(messageLower, []string{"invalid email", "email format", "email is not valid"}) {
		return domain.NewValidationError("email", nil, "Invalid email format")
	}

	if containsAny(messageLower, []string{"password policy", "password requirement", "password too weak", "password must", "breaches", "similar to"}) {
		return domain.NewValidationError("password", nil, "Password does not meet security requirements")
	}

	if containsAny(messageLower, []string{"password is required", "missing password", "property password is missing"}) {
		return domain.NewValidationError("password", nil, "Password is required")
	}

	if containsAny(messageLower, []string{"flow expired", "flow has expired", "expired flow", "flow not found"}) {
		return domain.NewAuthError(domain.ErrCodeFlowExpired, "Authentication flow has expired. Please start over.", nil)
	}

	if containsAny(messageLower, []string{"connection refused", "timeout", "network error", "service unavailable"}) {
		return domain.NewAuthError(domain.ErrCodeServiceUnavailable, "Authentication service is temporarily unavailable", nil)
	}

	return domain.NewAuthError(domain.ErrCodeUnknown, fmt.Sprintf("Authentication error: %s", message), nil)
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}
