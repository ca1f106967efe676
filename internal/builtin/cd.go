package builtin

import (
	"context"
	"fmt"
)

// Cd implements the `cd` builtin (spec.md §4.5): with zero arguments
// or a bare `~`, changes to the home directory; with one argument,
// changes to that path. On failure it reports
// "cd: <arg>: No such file or directory" to stderr.
func Cd(_ context.Context, env *Env, args []string) int {
	target := env.Dir.Home()
	arg := "~"
	if len(args) > 0 && args[0] != "~" {
		target = args[0]
		arg = args[0]
	}

	if err := env.Dir.Set(target); err != nil {
		fmt.Fprintf(env.Stderr, "cd: %s: No such file or directory\n", arg)
		return 1
	}
	return 0
}
