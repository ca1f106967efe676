package builtin

import (
	"context"
	"fmt"
)

// Type implements the `type` builtin (spec.md §4.5): for each
// argument, reports whether it is a shell builtin, resolves to a path
// on PATH, or is not found.
func Type(_ context.Context, env *Env, args []string) int {
	status := 0
	for _, name := range args {
		switch {
		case env.Registry != nil && env.Registry.Has(name):
			fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		default:
			if path, ok := env.Resolver.Resolve(name); ok {
				fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
			} else {
				fmt.Fprintf(env.Stdout, "%s: not found\n", name)
				status = 1
			}
		}
	}
	return status
}
