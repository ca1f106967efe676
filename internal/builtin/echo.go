package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Echo implements the `echo` builtin (spec.md §4.5): emits its
// space-joined arguments followed by a newline, honoring a leading -n
// flag that suppresses the trailing newline.
func Echo(_ context.Context, env *Env, args []string) int {
	fs := pflag.NewFlagSet("echo", pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	noNewline := fs.BoolP("n", "n", false, "suppress trailing newline")

	// Only a leading -n is recognized; once a non-flag argument
	// appears, everything after it is literal (spec.md §4.5).
	var flagArgs, rest []string
	for i, a := range args {
		if a == "-n" {
			flagArgs = append(flagArgs, a)
			continue
		}
		rest = args[i:]
		break
	}
	if err := fs.Parse(flagArgs); err != nil {
		fmt.Fprintf(env.Stderr, "echo: %v\n", err)
		return 2
	}

	fmt.Fprint(env.Stdout, strings.Join(rest, " "))
	if !*noNewline {
		fmt.Fprintln(env.Stdout)
	}
	return 0
}
