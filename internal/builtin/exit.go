package builtin

import (
	"context"
	"fmt"
	"strconv"
)

// Exit implements the `exit` builtin (spec.md §4.5): an optional
// single numeric argument (default 0), flushing HistoryStore to
// Env.HistFile if one is configured, then signalling the Shell engine
// to terminate. It never calls os.Exit itself.
func Exit(_ context.Context, env *Env, args []string) int {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(env.Stderr, "exit: %s: numeric argument required\n", args[0])
			code = 2
		} else {
			code = n
		}
	}

	if env.HistFile != "" && env.History != nil {
		if err := env.History.Append(env.HistFile); err != nil {
			fmt.Fprintf(env.Stderr, "exit: %s: %v\n", env.HistFile, err)
		}
	}

	if env.Exit != nil {
		env.Exit.Requested = true
		env.Exit.Code = code
	}
	return code
}
