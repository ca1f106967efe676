package builtin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// History implements the `history` builtin (spec.md §4.5): with no
// args, lists every entry; with a positive integer N, lists the last
// N; -c clears in-memory history; -w/-r/-a write/read/append against
// the given path, or Env.HistFile if no path is given.
func History(_ context.Context, env *Env, args []string) int {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	clear := fs.BoolP("c", "c", false, "clear history")
	write := fs.StringP("w", "w", "", "write history to path")
	fs.Lookup("w").NoOptDefVal = " "
	read := fs.StringP("r", "r", "", "read history from path")
	fs.Lookup("r").NoOptDefVal = " "
	appendFlag := fs.StringP("a", "a", "", "append new history to path")
	fs.Lookup("a").NoOptDefVal = " "

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(env.Stderr, "history: %v\n", err)
		return 2
	}

	// With an optional value, pflag does not consume the following word
	// ("-w path"), so a bare -w/-r/-a takes its path from the first
	// positional argument when there is one.
	if rest := fs.Args(); len(rest) > 0 {
		for _, v := range []*string{write, read, appendFlag} {
			if *v == " " {
				*v = rest[0]
			}
		}
	}

	switch {
	case *clear:
		env.History.Clear()
		return 0

	case fs.Changed("w"):
		return runHistoryIO(env, *write, env.History.Write)

	case fs.Changed("r"):
		return runHistoryIO(env, *read, env.History.Read)

	case fs.Changed("a"):
		return runHistoryIO(env, *appendFlag, env.History.Append)
	}

	entries := env.History.All()
	if rest := fs.Args(); len(rest) > 0 {
		if n, err := strconv.Atoi(rest[0]); err == nil && n > 0 {
			entries = env.History.Last(n)
		}
	}
	printHistory(env, entries)
	return 0
}

func runHistoryIO(env *Env, path string, op func(string) error) int {
	if path == "" || path == " " {
		path = env.HistFile
	}
	if path == "" {
		fmt.Fprintln(env.Stderr, "history: no history file configured")
		return 1
	}
	if err := op(path); err != nil {
		fmt.Fprintf(env.Stderr, "history: %s: %v\n", path, err)
		return 1
	}
	return 0
}

func printHistory(env *Env, entries []HistoryEntry) {
	for _, e := range entries {
		fmt.Fprintf(env.Stdout, "%4d  %s\n", e.Seq, e.Text)
	}
}
