package ui

// Suggestion decorates the additive "did you mean" line appended to a
// command-not-found diagnostic (SPEC_FULL.md §10). Never applied to
// the literal "<name>: command not found" text spec.md §7 specifies.
func Suggestion(s string) string {
	return SuggestionStyle.Render(s)
}

// Muted decorates secondary, non-literal output such as a completion
// candidate listing (spec.md §4.9's second-tab display).
func Muted(s string) string {
	return MutedStyle.Render(s)
}
