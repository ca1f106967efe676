package ui

import "github.com/charmbracelet/lipgloss"

// Theme names poshell's decorative color scheme (SPEC_FULL.md §6.1).
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DetectTheme returns the terminal's apparent background (dark or
// light), used to resolve ThemeAuto.
func DetectTheme() Theme {
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// Apply sets the active color scheme from a config.Config.Theme value,
// resolving "auto" against the terminal's detected background.
func Apply(theme string) {
	t := Theme(theme)
	if t == ThemeAuto || t == "" {
		t = DetectTheme()
	}
	if t == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}
