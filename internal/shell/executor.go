package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"poshell/internal/builtin"
	"poshell/internal/ui"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PipelineExecutor drives a Pipeline to completion (spec.md §4.7): the
// single-builtin fast path, the single-builtin-with-redirection path
// that avoids a fork entirely, and the general N-stage fan-out that
// hybridizes real child processes (external stages) with goroutines
// standing in for a forked builtin (see SPEC_FULL.md §4).
type PipelineExecutor struct {
	Registry *builtin.Registry
	Resolver *PathResolver
	Runner   ExternalRunner
	Dir      builtin.Dir
	History  *HistoryStore
	HistFile string
	Exit     *builtin.ExitState
}

// Run executes p and returns the pipeline's exit code: the last
// stage's status (spec.md §4.7, §5 "Ordering").
func (pe *PipelineExecutor) Run(ctx context.Context, p *Pipeline) int {
	if p == nil || len(p.Stages) == 0 {
		return 0
	}

	if len(p.Stages) == 1 {
		return pe.runSingle(ctx, p.Stages[0])
	}
	return pe.runMulti(ctx, p.Stages)
}

func (pe *PipelineExecutor) buildEnv(stdin io.Reader, stdout, stderr io.Writer) *builtin.Env {
	return &builtin.Env{
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Dir:      pe.Dir,
		History:  pe.History,
		Resolver: pe.Resolver,
		HistFile: pe.HistFile,
		Registry: pe.Registry,
		Exit:     pe.Exit,
	}
}

func (pe *PipelineExecutor) runSingle(ctx context.Context, stage Stage) int {
	if len(stage.Argv) == 0 {
		return 0
	}
	name := stage.Argv[0]

	if handler, ok := pe.Registry.Lookup(name); ok {
		if stage.Redirects.Stdout == nil && stage.Redirects.Stderr == nil {
			// Single-stage fast path (spec.md §4.7): no fork at all.
			env := pe.buildEnv(os.Stdin, os.Stdout, os.Stderr)
			return handler(ctx, env, stage.Argv[1:])
		}
		// Single builtin stage with file redirection (spec.md §4.7):
		// the builtin already takes its streams as explicit Env fields
		// rather than touching process-wide os.Stdout, so "rebinding"
		// is simply passing the opened files as Env.Stdout/Stderr —
		// no global save/restore, and no stream-substitution hazard
		// (spec.md §9 warns against in-process stdout swapping).
		stdout := io.Writer(os.Stdout)
		stderr := io.Writer(os.Stderr)
		var opened []*os.File
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		if stage.Redirects.Stdout != nil {
			f, err := openRedirectFile(stage.Redirects.Stdout)
			if err != nil {
				reportIOError(os.Stderr, stage.Redirects.Stdout.Path, err)
				return 1
			}
			opened = append(opened, f)
			stdout = f
		}
		if stage.Redirects.Stderr != nil {
			f, err := openRedirectFile(stage.Redirects.Stderr)
			if err != nil {
				reportIOError(os.Stderr, stage.Redirects.Stderr.Path, err)
				return 1
			}
			opened = append(opened, f)
			stderr = f
		}

		env := pe.buildEnv(os.Stdin, stdout, stderr)
		return handler(ctx, env, stage.Argv[1:])
	}

	return pe.runExternal(name, stage, os.Stdin, os.Stdout, os.Stderr)
}

func (pe *PipelineExecutor) runExternal(name string, stage Stage, stdin *os.File, stdout, stderr io.Writer) int {
	path, ok := pe.Resolver.Resolve(name)
	if !ok {
		reportResolutionError(stderr, name, pe.Registry, pe.Resolver)
		return 127
	}

	var opened []*os.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	outFile := stdout
	if stage.Redirects.Stdout != nil {
		f, err := openRedirectFile(stage.Redirects.Stdout)
		if err != nil {
			reportIOError(stderr, stage.Redirects.Stdout.Path, err)
			return 1
		}
		opened = append(opened, f)
		outFile = f
	}
	errFile := stderr
	if stage.Redirects.Stderr != nil {
		f, err := openRedirectFile(stage.Redirects.Stderr)
		if err != nil {
			reportIOError(stderr, stage.Redirects.Stderr.Path, err)
			return 1
		}
		opened = append(opened, f)
		errFile = f
	}

	cmd, err := pe.Runner.Spawn(path, stage.Argv, IOPlan{Stdin: stdin, Stdout: outFile, Stderr: errFile})
	if err != nil {
		return 127
	}
	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return 127
	}
	return 0
}

// pipeEnd is one OS pipe's two ends, pipe i connecting stage i's stdout
// to stage i+1's stdin (spec.md §4.7).
type pipeEnd struct {
	r, w *os.File
}

// runMulti implements the N>1 case of spec.md §4.7: all pipes are
// created up front, every stage is launched (forked, in the external
// case; goroutine-spawned, in the builtin case), the parent then
// closes every pipe fd it still holds, and finally waits on every
// stage in pipeline order. The last stage's status is the pipeline's.
func (pe *PipelineExecutor) runMulti(ctx context.Context, stages []Stage) int {
	n := len(stages)
	pipes := make([]pipeEnd, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintf(os.Stderr, "pipe: %v\n", err)
			return 1
		}
		pipes[i] = pipeEnd{r: r, w: w}
	}

	results := make([]int, n)
	var wg sync.WaitGroup
	var parentCloses []*os.File

	for i, stage := range stages {
		stdin := os.Stdin
		if i > 0 {
			stdin = pipes[i-1].r
		}

		stdout := io.Writer(os.Stdout)
		var stdoutFile *os.File
		if stage.Redirects.Stdout != nil {
			f, err := openRedirectFile(stage.Redirects.Stdout)
			if err != nil {
				reportIOError(os.Stderr, stage.Redirects.Stdout.Path, err)
				results[i] = 1
				if i > 0 {
					parentCloses = append(parentCloses, pipes[i-1].r)
				}
				if i < n-1 {
					parentCloses = append(parentCloses, pipes[i].w)
				}
				continue
			}
			stdout = f
			stdoutFile = f
			if i < n-1 {
				// A file redirection overrides the pipe slot (spec.md
				// §3, §4.7): the pipe writer this stage would have
				// used goes unused and must still be closed, exactly
				// as an unused dup'd fd is closed in the child.
				parentCloses = append(parentCloses, pipes[i].w)
			}
		} else if i < n-1 {
			stdout = pipes[i].w
			stdoutFile = pipes[i].w
		}

		stderr := io.Writer(os.Stderr)
		var stderrFile *os.File
		if stage.Redirects.Stderr != nil {
			f, err := openRedirectFile(stage.Redirects.Stderr)
			if err != nil {
				reportIOError(os.Stderr, stage.Redirects.Stderr.Path, err)
				results[i] = 1
				parentCloses = append(parentCloses, ownedFiles(i, n, stdin, stdoutFile, nil, pipes)...)
				continue
			}
			stderr = f
			stderrFile = f
		}

		if len(stage.Argv) == 0 {
			results[i] = 0
			continue
		}
		name := stage.Argv[0]

		if handler, ok := pe.Registry.Lookup(name); ok {
			wg.Add(1)
			go func(i int, handler builtin.Handler, argv []string, stdin io.Reader, stdout, stderr io.Writer, closeFiles []*os.File) {
				defer wg.Done()
				defer func() {
					for _, f := range closeFiles {
						f.Close()
					}
				}()
				env := pe.buildEnv(stdin, stdout, stderr)
				results[i] = handler(ctx, env, argv[1:])
			}(i, handler, stage.Argv, stdin, stdout, stderr, ownedFiles(i, n, stdin, stdoutFile, stderrFile, pipes))
			continue
		}

		path, ok := pe.Resolver.Resolve(name)
		if !ok {
			reportResolutionError(stderr, name, pe.Registry, pe.Resolver)
			results[i] = 127
			if i > 0 {
				parentCloses = append(parentCloses, pipes[i-1].r)
			}
			if stdoutFile != nil && stdoutFile != os.Stdout {
				parentCloses = append(parentCloses, stdoutFile)
			}
			if stderrFile != nil && stderrFile != os.Stderr {
				parentCloses = append(parentCloses, stderrFile)
			}
			continue
		}

		cmd, err := pe.Runner.Spawn(path, stage.Argv, IOPlan{Stdin: stdin, Stdout: stdout, Stderr: stderr})
		parentCloses = append(parentCloses, ownedFiles(i, n, stdin, stdoutFile, stderrFile, pipes)...)
		if err != nil {
			results[i] = 127
			continue
		}

		wg.Add(1)
		go func(i int, cmd *exec.Cmd) {
			defer wg.Done()
			if err := cmd.Wait(); err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					results[i] = exitErr.ExitCode()
					return
				}
				results[i] = 127
				return
			}
			results[i] = 0
		}(i, cmd)
	}

	// Ordering guarantee (spec.md §4.7): every pipe fd the parent still
	// holds is closed before waiting on anything, or a reader stuck on
	// an unclosed writer deadlocks the whole pipeline.
	for _, f := range parentCloses {
		f.Close()
	}

	wg.Wait()
	return results[n-1]
}

// ownedFiles returns the concrete *os.File handles stage i is
// responsible for closing once it finishes (builtin goroutine) or
// once its child has started (external stage) — its own pipe read
// end, its own pipe write end, and any file it opened for redirection.
// os.Stdin/os.Stdout/os.Stderr are never included: those belong to the
// whole process, not to any one stage.
func ownedFiles(i, n int, stdin io.Reader, stdoutFile, stderrFile *os.File, pipes []pipeEnd) []*os.File {
	var files []*os.File
	if i > 0 {
		files = append(files, pipes[i-1].r)
	}
	if i < n-1 && stdoutFile == pipes[i].w {
		files = append(files, pipes[i].w)
	}
	if stdoutFile != nil && stdoutFile != os.Stdout && !(i < n-1 && stdoutFile == pipes[i].w) {
		files = append(files, stdoutFile)
	}
	if stderrFile != nil && stderrFile != os.Stderr {
		files = append(files, stderrFile)
	}
	return files
}

func openRedirectFile(fr *FileRedirect) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if fr.Mode == RedirAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(fr.Path, flags, 0o644)
}

func reportIOError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "open: %s: %v\n", path, err)
}

// reportResolutionError prints the required literal diagnostic (spec.md
// §7) plus, as a supplemented feature (SPEC_FULL.md §10), a best-guess
// "did you mean" line when a builtin or PATH name is a close match —
// purely additive, it never changes the first line or the 127 status.
func reportResolutionError(w io.Writer, name string, registry *builtin.Registry, resolver *PathResolver) {
	fmt.Fprintf(w, "%s: command not found\n", name)

	candidates := append([]string(nil), registry.Names()...)
	candidates = append(candidates, resolver.Scan()...)
	if len(candidates) == 0 {
		return
	}
	rank, ok := fuzzy.RankFind(name, candidates)
	if !ok || rank.Distance > len(name)/2+1 {
		return
	}
	fmt.Fprintf(w, "poshell: did you mean '%s'?\n", ui.Suggestion(rank.Target))
}
