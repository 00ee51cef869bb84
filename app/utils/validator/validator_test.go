package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestRegistration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
}

type TestProfileUpdate struct {
	Theme    string `json:"theme" validate:"omitempty,theme"`
	Currency string `json:"currency" validate:"omitempty,currency"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid registration",
			input: TestRegistration{
				Email:       "test@example.com",
				Password:    "SecurePass123!",
				DisplayName: "Test User",
			},
			wantError: false,
		},
		{
			name: "invalid email",
			input: TestRegistration{
				Email:       "invalid-email",
				Password:    "SecurePass123!",
				DisplayName: "Test User",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "email")
			},
		},
		{
			name: "missing required fields",
			input: TestRegistration{
				Email: "test@example.com",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
				assert.Contains(t, validationErr.Errors, "display_name")
			},
		},
		{
			name: "weak password",
			input: TestRegistration{
				Email:       "test@example.com",
				Password:    "weak",
				DisplayName: "Test User",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
			},
		},
		{
			name: "valid profile update",
			input: TestProfileUpdate{
				Theme:    "dark",
				Currency: "EUR",
			},
			wantError: false,
		},
		{
			name:      "empty profile update passes omitempty",
			input:     TestProfileUpdate{},
			wantError: false,
		},
		{
			name: "unsupported theme",
			input: TestProfileUpdate{
				Theme: "sepia",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "theme")
			},
		},
		{
			name: "bad currency code",
			input: TestProfileUpdate{
				Currency: "euros",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "currency")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		field     interface{}
		tag       string
		wantError bool
	}{
		{
			name:      "valid email",
			field:     "test@example.com",
			tag:       "required,email",
			wantError: false,
		},
		{
			name:      "invalid email",
			field:     "invalid-email",
			tag:       "required,email",
			wantError: true,
		},
		{
			name:      "empty required field",
			field:     "",
			tag:       "required",
			wantError: true,
		},
		{
			name:      "valid theme",
			field:     "auto",
			tag:       "theme",
			wantError: false,
		},
		{
			name:      "invalid theme",
			field:     "midnight",
			tag:       "theme",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.field, tt.tag)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid email", "test@example.com", true},
		{"valid email with subdomain", "user@mail.example.com", true},
		{"invalid email - no @", "testexample.com", false},
		{"invalid email - no domain", "test@", false},
		{"empty email", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidEmail(tt.email)
			assert.Equal(t, tt.valid, result)
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "SecurePass123!", true},
		{"valid password with symbols", "MyP@ssw0rd#123", true},
		{"too short", "Sec1!", false},
		{"no uppercase", "securepass123!", false},
		{"no lowercase", "SECUREPASS123!", false},
		{"no number", "SecurePass!", false},
		{"no special char", "SecurePass123", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidPassword(tt.password)
			assert.Equal(t, tt.valid, result)
		})
	}
}

func TestCustomValidators(t *testing.T) {
	v := New()

	t.Run("theme validation", func(t *testing.T) {
		validThemes := []string{"light", "dark", "auto"}
		invalidThemes := []string{"sepia", "midnight", "Auto", ""}

		for _, theme := range validThemes {
			err := v.ValidateVar(theme, "theme")
			assert.NoError(t, err, "Theme %s should be valid", theme)
		}

		for _, theme := range invalidThemes {
			err := v.ValidateVar(theme, "theme")
			assert.Error(t, err, "Theme %s should be invalid", theme)
		}
	})

	t.Run("currency validation", func(t *testing.T) {
		validCurrencies := []string{"USD", "EUR", "JPY"}
		invalidCurrencies := []string{"usd", "dollars", "US", "USDT"}

		for _, currency := range validCurrencies {
			err := v.ValidateVar(currency, "currency")
			assert.NoError(t, err, "Currency %s should be valid", currency)
		}

		for _, currency := range invalidCurrencies {
			err := v.ValidateVar(currency, "currency")
			assert.Error(t, err, "Currency %s should be invalid", currency)
		}
	})
}

func TestValidationError(t *testing.T) {
	v := New()

	registration := TestRegistration{
		Email: "invalid-email",
	}

	err := v.Validate(registration)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)

	errorMsg := validationErr.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "email")

	assert.Contains(t, validationErr.Errors, "email")
	assert.Contains(t, validationErr.Errors, "password")
	assert.Contains(t, validationErr.Errors, "display_name")
}
