package shell

import (
	"fmt"
	"os"
	"strings"

	"poshell/internal/ui"
	"github.com/chzyer/readline"
)

// autoCompleter adapts Completer's two-tab protocol (spec.md §4.9) to
// readline.AutoCompleter, the single hook chzyer/readline exposes for
// Tab. Bell-ringing and the second-tab match listing are handled here
// directly against stdout, since readline's own candidate-insertion
// path only covers the "return the completed suffix" case.
type autoCompleter struct {
	completer *Completer
	bell      bool // config.Config.CompletionBell (SPEC_FULL.md §6.1)
}

func newAutoCompleter(c *Completer, bell bool) readline.AutoCompleter {
	return &autoCompleter{completer: c, bell: bell}
}

// Do implements readline.AutoCompleter. line is the full buffer up to
// the cursor's rune position pos; only the trailing WORD is used as
// the completion prefix, matching spec.md §4.9's "Prefix" definition.
func (a *autoCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	buf := string(line[:pos])
	idx := strings.LastIndexAny(buf, " \t|")
	prefix := buf[idx+1:]

	result := a.completer.Tab(prefix)

	switch {
	case result.Bell:
		if a.bell {
			fmt.Fprint(os.Stdout, "\a")
		}
		return nil, 0

	case result.ShowList:
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, ui.Muted(strings.Join(result.Matches, "  ")))
		return nil, 0

	case result.Insert != "":
		suffix := strings.TrimPrefix(result.Insert, prefix)
		return [][]rune{[]rune(suffix)}, len(prefix)

	default:
		return nil, 0
	}
}
