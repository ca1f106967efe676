// Package ui holds the lipgloss styles used to decorate the
// non-literal parts of poshell's output — diagnostics and the
// completion-listing line — per SPEC_FULL.md §6.2. It never touches
// the literal prompt or any text spec.md §7/§8 tests byte-for-byte.
package ui

import "github.com/charmbracelet/lipgloss"

// ThemePalette holds the current color scheme.
type ThemePalette struct {
	Red, Green, Yellow, Blue, Mauve lipgloss.Color
	Text, Subtext, Overlay          lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	SetDarkTheme()
}

// SetDarkTheme switches to Catppuccin Mocha.
func SetDarkTheme() {
	currentTheme = ThemePalette{
		Red: "#f38ba8", Green: "#a6e3a1", Yellow: "#f9e2af",
		Blue: "#89b4fa", Mauve: "#cba6f7",
		Text: "#cdd6f4", Subtext: "#bac2de", Overlay: "#7f849c",
	}
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte.
func SetLightTheme() {
	currentTheme = ThemePalette{
		Red: "#d20f39", Green: "#40a02b", Yellow: "#df8e1d",
		Blue: "#1e66f5", Mauve: "#8839ef",
		Text: "#4c4f69", Subtext: "#5c5f77", Overlay: "#8c8fa1",
	}
	refreshStyles()
}

// Semantic styles for shell diagnostics and completion output.
var (
	MutedStyle      lipgloss.Style // completion listings, secondary text
	ErrorStyle      lipgloss.Style // defined for error text; not applied to any output
	SuggestionStyle lipgloss.Style // "did you mean" line
	CommandStyle    lipgloss.Style // defined for command names; not applied to any output
)

func refreshStyles() {
	MutedStyle = lipgloss.NewStyle().Foreground(currentTheme.Overlay)
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)
	SuggestionStyle = lipgloss.NewStyle().Foreground(currentTheme.Yellow)
	CommandStyle = lipgloss.NewStyle().Foreground(currentTheme.Green).Bold(true)
}
