package shell

import (
	"sort"
	"strings"

	"poshell/internal/builtin"
)

// Completer implements the two-tab protocol of spec.md §4.9 over the
// candidate set of builtin names union PATH executables.
type Completer struct {
	Registry *builtin.Registry
	Resolver *PathResolver

	lastPrefix  string
	lastMatches []string
	tabCount    int
}

// NewCompleter builds a Completer over registry and resolver.
func NewCompleter(registry *builtin.Registry, resolver *PathResolver) *Completer {
	return &Completer{Registry: registry, Resolver: resolver}
}

// Result is the outcome of one Tab press (spec.md §4.9).
type Result struct {
	Bell      bool     // ring the terminal bell, no text change
	Insert    string   // text to splice in place of the prefix (may be empty)
	ShowList  bool     // print newline + matches, then redraw
	Matches   []string // populated when ShowList is true
}

func (c *Completer) candidates(prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range c.Registry.Names() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range c.Resolver.Scan() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Tab processes one Tab keypress against the current prefix (spec.md
// §4.9's two-tab protocol). Callers are responsible for actually
// ringing the bell / redrawing; Tab only decides what should happen.
func (c *Completer) Tab(prefix string) Result {
	if prefix != c.lastPrefix {
		c.lastPrefix = prefix
		c.tabCount = 0
		c.lastMatches = c.candidates(prefix)
	}
	matches := c.lastMatches

	switch len(matches) {
	case 0:
		return Result{Bell: true}
	case 1:
		return Result{Insert: matches[0] + " "}
	}

	lcp := longestCommonPrefix(matches)
	if len(lcp) > len(prefix) {
		return Result{Insert: lcp}
	}

	switch c.tabCount {
	case 0:
		c.tabCount = 1
		return Result{Bell: true}
	case 1:
		c.tabCount = 2
		return Result{ShowList: true, Matches: matches}
	default:
		return Result{}
	}
}

// Reset clears the remembered prefix, matches and tab count, forcing
// the next Tab to rescan. Tab itself resets this state whenever the
// prefix differs from the previous one.
func (c *Completer) Reset() {
	c.lastPrefix = ""
	c.lastMatches = nil
	c.tabCount = 0
}

func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		i := 0
		for i < len(prefix) && i < len(s) && prefix[i] == s[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			break
		}
	}
	return prefix
}
