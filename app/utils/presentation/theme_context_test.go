package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"session-manager/app/domain"
)

func darkPreference() domain.Theme  { return domain.ThemeDark }
func lightPreference() domain.Theme { return domain.ThemeLight }

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		defaultTheme domain.Theme
		preference   func() domain.Theme
		want         domain.Theme
	}{
		{"concrete default is applied as-is", domain.ThemeDark, lightPreference, domain.ThemeDark},
		{"auto resolves against dark preference", domain.ThemeAuto, darkPreference, domain.ThemeDark},
		{"auto resolves against light preference", domain.ThemeAuto, lightPreference, domain.ThemeLight},
		{"invalid default falls back to auto", domain.Theme("sepia"), darkPreference, domain.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(tt.defaultTheme, tt.preference)
			assert.Equal(t, tt.want, ctx.ActiveTheme())
		})
	}
}

func TestSetTheme(t *testing.T) {
	ctx := New(domain.ThemeLight, lightPreference)

	ctx.SetTheme(domain.ThemeDark)
	assert.Equal(t, domain.ThemeDark, ctx.ActiveTheme())

	// Invalid input never clobbers the current state
	ctx.SetTheme(domain.Theme("sepia"))
	assert.Equal(t, domain.ThemeDark, ctx.ActiveTheme())

	ctx.SetTheme(domain.ThemeAuto)
	assert.Equal(t, domain.ThemeAuto, ctx.ActiveTheme())
}

func TestSystemPreference(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, New(domain.ThemeAuto, darkPreference).SystemPreference())
	assert.Equal(t, domain.ThemeLight, New(domain.ThemeAuto, lightPreference).SystemPreference())

	// Non-binary preference values degrade to light
	odd := New(domain.ThemeAuto, func() domain.Theme { return domain.Theme("sepia") })
	assert.Equal(t, domain.ThemeLight, odd.SystemPreference())
}

func TestEnvSystemPreference(t *testing.T) {
	t.Setenv("SYSTEM_THEME", "dark")
	assert.Equal(t, domain.ThemeDark, EnvSystemPreference())

	t.Setenv("SYSTEM_THEME", "DARK")
	assert.Equal(t, domain.ThemeDark, EnvSystemPreference())

	t.Setenv("SYSTEM_THEME", "light")
	assert.Equal(t, domain.ThemeLight, EnvSystemPreference())

	t.Setenv("SYSTEM_THEME", "")
	assert.Equal(t, domain.ThemeLight, EnvSystemPreference())
}

func TestNilPreferenceFallsBackToEnv(t *testing.T) {
	t.Setenv("SYSTEM_THEME", "dark")

	ctx := New(domain.ThemeAuto, nil)
	assert.Equal(t, domain.ThemeDark, ctx.ActiveTheme())
}
