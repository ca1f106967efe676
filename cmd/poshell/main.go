// Command poshell is a local POSIX-style interactive shell core
// (spec.md §1): lexer, redirection resolver, pipeline executor,
// builtin registry, history, and tab completion, over local processes
// and the filesystem. It defines no command-line flags (spec.md §6).
package main

import (
	"context"
	"fmt"
	"os"

	"poshell/internal/config"
	"poshell/internal/shell"
	"poshell/internal/ui"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: config: %v\n", err)
		cfg = config.Default()
	}
	ui.Apply(cfg.Theme)

	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: %v\n", err)
		return 1
	}
	sh.LoadHistory()
	defer sh.Shutdown()

	ctx := context.Background()
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return sh.RunInteractive(ctx)
	}
	return sh.RunScripted(ctx, os.Stdin)
}
