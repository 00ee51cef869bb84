package presentation

import (
	"os"
	"strings"
	"sync"

	"session-manager/app/domain"
)

// Context is the presentation collaborator: it holds the active visual theme
// for the running client and exposes the ambient system preference.
type Context struct {
	mu     sync.RWMutex
	active domain.Theme
	system func() domain.Theme
}

// New creates a presentation context. A nil systemPreference falls back to
// the environment-derived preference.
func New(defaultTheme domain.Theme, systemPreference func() domain.Theme) *Context {
	if !defaultTheme.Valid() {
		defaultTheme = domain.ThemeAuto
	}
	if systemPreference == nil {
		systemPreference = EnvSystemPreference
	}

	ctx := &Context{
		system: systemPreference,
	}
	ctx.active = defaultTheme.Resolve(systemPreference())

	return ctx
}

// SetTheme sets the active theme class. Invalid themes are ignored so the
// current presentation state is never clobbered by bad input.
func (c *Context) SetTheme(theme domain.Theme) {
	if !theme.Valid() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = theme
}

// ActiveTheme returns the currently applied theme class
func (c *Context) ActiveTheme() domain.Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SystemPreference resolves the ambient system preference at call time.
// No persistent subscription to preference changes is established.
func (c *Context) SystemPreference() domain.Theme {
	if pref := c.system(); pref == domain.ThemeDark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// EnvSystemPreference derives the system preference from the SYSTEM_THEME
// environment variable, the closest stand-in this process has for an
// OS-level color-scheme query.
func EnvSystemPreference() domain.Theme {
	if strings.EqualFold(os.Getenv("SYSTEM_THEME"), "dark") {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}
