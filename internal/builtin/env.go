// Package builtin implements the shell's required internal commands:
// exit, echo, pwd, cd, type, and history (spec.md §4.5). Handlers never
// touch process-wide state directly — they read and write only the
// streams and services handed to them through Env, so the same handler
// runs correctly whether it is the single in-process fast path or a
// goroutine standing in for a forked pipeline stage.
package builtin

import (
	"context"
	"io"
)

// HistoryEntry is one recorded command line (spec.md §3).
type HistoryEntry struct {
	Seq  int
	Text string
}

// History is the subset of HistoryStore a builtin may drive directly
// (the `history` builtin itself).
type History interface {
	All() []HistoryEntry
	Last(n int) []HistoryEntry
	Clear()
	Write(path string) error
	Read(path string) error
	Append(path string) error
}

// Resolver is the subset of PathResolver the `type` builtin needs.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// Dir abstracts the working-directory state `cd`/`pwd` operate on.
type Dir interface {
	Get() string
	Set(path string) error
	Home() string
}

// ExitState is shared, mutable signal from the `exit` builtin back to
// the Shell engine: Handler return values alone can't tell the REPL
// loop to stop, since a non-zero exit status from any other builtin or
// external command must NOT terminate the shell.
type ExitState struct {
	Requested bool
	Code      int
}

// Env is the capability set a Handler executes under: its IOPlan
// (already bound to the stage's pipe/file endpoints by the
// PipelineExecutor) plus the ambient services owned by the Shell
// engine (spec.md §4.5, §3 "Ownership").
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Dir      Dir
	History  History
	Resolver Resolver
	HistFile string // HISTFILE, or "" if unset
	Registry *Registry
	Exit     *ExitState
}

// Handler is the uniform shape every builtin implements (spec.md
// §4.5's "Builtin contract"): it executes under the env it's given and
// returns its exit status. It must never call os.Exit or any other
// process-termination primitive — only `exit` signals termination, and
// it does so through Env.Exit, not by actually ending the process.
type Handler func(ctx context.Context, env *Env, args []string) int
