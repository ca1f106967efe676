package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"poshell/internal/builtin"
	"poshell/internal/config"
	"poshell/internal/session"
	"github.com/chzyer/readline"
)

// Prompt is the literal two-character prompt spec.md §6 mandates.
// It is never passed through any lipgloss style — decoration is
// reserved for non-literal output (SPEC_FULL.md §6.2).
const Prompt = "$ "

// Shell is the top-level engine wiring every other component
// together (spec.md §2's "Shell (engine)" row): it owns the
// BuiltinRegistry, HistoryStore, Completer, PathResolver, and
// PipelineExecutor, and drives the REPL loop.
type Shell struct {
	Dir      *session.Session
	History  *HistoryStore
	Resolver *PathResolver
	Registry *builtin.Registry
	Executor *PipelineExecutor
	Exit     *builtin.ExitState
	HistFile string
	Config   *config.Config
}

// New assembles a Shell with every collaborator wired per spec.md §2's
// dependency order. cfg supplies the ambient settings SPEC_FULL.md
// §6.1 adds on top of spec.md's own contract (history capacity,
// completion bell audibility, theme — already applied by the caller).
func New(cfg *config.Config) (*Shell, error) {
	dir, err := session.New()
	if err != nil {
		return nil, err
	}

	resolver := NewPathResolver()
	history := NewHistoryStore()
	registry := builtin.NewRegistry()
	exit := &builtin.ExitState{}
	histFile := os.Getenv("HISTFILE")

	s := &Shell{
		Dir:      dir,
		History:  history,
		Resolver: resolver,
		Registry: registry,
		Exit:     exit,
		HistFile: histFile,
		Config:   cfg,
	}
	s.Executor = &PipelineExecutor{
		Registry: registry,
		Resolver: resolver,
		Dir:      dir,
		History:  history,
		HistFile: histFile,
		Exit:     exit,
	}
	return s, nil
}

// LoadHistory seeds HistoryStore from HISTFILE at startup (spec.md §8
// scenario 6), silently doing nothing if HISTFILE is unset or absent.
func (s *Shell) LoadHistory() {
	if s.HistFile == "" {
		return
	}
	if _, err := os.Stat(s.HistFile); err != nil {
		return
	}
	if err := s.History.Read(s.HistFile); err != nil {
		fmt.Fprintf(os.Stderr, "history: %s: %v\n", s.HistFile, err)
	}
}

// RunInteractive drives the REPL over an interactive terminal using
// chzyer/readline for line editing, history navigation, and the
// two-tab completion callback (spec.md §4.10). It returns the process
// exit status once `exit` is invoked or stdin reaches EOF.
func (s *Shell) RunInteractive(ctx context.Context) int {
	completer := NewCompleter(s.Registry, s.Resolver)
	bell := s.Config == nil || s.Config.CompletionBell
	limit := 1000
	if s.Config != nil && s.Config.HistorySize > 0 {
		limit = s.Config.HistorySize
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            Prompt,
		AutoComplete:      newAutoCompleter(completer, bell),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		HistoryLimit:      limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: %v\n", err)
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "poshell: %v\n", err)
			return 1
		}

		s.runLine(ctx, line)
		if s.Exit.Requested {
			return s.Exit.Code
		}
	}
}

// RunScripted drives the REPL over a non-tty stdin (piped input, test
// harnesses) without any line-editing or completion machinery — the
// literal prompt is still written before each read per spec.md §6.
func (s *Shell) RunScripted(ctx context.Context, in io.Reader) int {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(os.Stdout, Prompt)
		if !sc.Scan() {
			return 0
		}
		s.runLine(ctx, sc.Text())
		if s.Exit.Requested {
			return s.Exit.Code
		}
	}
}

// runLine executes one raw input line end to end: record it in
// history, tokenize, split, resolve redirections, and dispatch the
// resulting Pipeline through the PipelineExecutor. Every error class
// is contained here (spec.md §7 "Propagation"): a diagnostic is
// printed and the loop always returns to the prompt.
func (s *Shell) runLine(ctx context.Context, line string) {
	s.History.Record(line)

	if strings.TrimSpace(line) == "" {
		return
	}

	pipeline, err := ParsePipeline(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if pipeline == nil {
		return
	}

	s.Executor.Run(ctx, pipeline)
}

// Shutdown flushes history to HISTFILE if one is configured, mirroring
// the `exit` builtin's own flush (spec.md §4.5) for the case where the
// loop terminates via EOF rather than an explicit `exit` call.
func (s *Shell) Shutdown() {
	if s.HistFile == "" {
		return
	}
	if err := s.History.Append(s.HistFile); err != nil {
		fmt.Fprintf(os.Stderr, "history: %s: %v\n", s.HistFile, err)
	}
}
