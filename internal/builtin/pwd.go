package builtin

import (
	"context"
	"fmt"
)

// Pwd implements the `pwd` builtin (spec.md §4.5): emits the current
// working directory.
func Pwd(_ context.Context, env *Env, _ []string) int {
	fmt.Fprintln(env.Stdout, env.Dir.Get())
	return 0
}
