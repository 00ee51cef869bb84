package domain

// Theme represents the active visual theme of the presentation context
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid returns true for a supported theme name
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// Concrete returns true for a theme that needs no ambient resolution
func (t Theme) Concrete() bool {
	return t == ThemeLight || t == ThemeDark
}

// Resolve maps auto to the ambient system preference; concrete themes are
// returned unchanged.
func (t Theme) Resolve(systemPreference Theme) Theme {
	if t != ThemeAuto {
		return t
	}
	if systemPreference == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
