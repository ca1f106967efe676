package shell

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// PathResolver locates executables on PATH and memoizes both positive
// and negative results for the lifetime of the process (spec.md §4.1).
type PathResolver struct {
	mu    sync.Mutex
	cache map[string]string // "" means NOT_FOUND
	path  func() string     // overridable for tests
}

// NewPathResolver builds a resolver reading PATH from the environment
// at resolve time (so changes to PATH take effect without restarting
// the shell, while still memoizing per distinct name).
func NewPathResolver() *PathResolver {
	return &PathResolver{
		cache: make(map[string]string),
		path:  func() string { return os.Getenv("PATH") },
	}
}

// Resolve returns the absolute path of name, or ok=false if it cannot
// be found. If name contains a path separator it is checked directly
// (relative to the current directory) rather than searched on PATH.
func (r *PathResolver) Resolve(name string) (string, bool) {
	r.mu.Lock()
	if p, ok := r.cache[name]; ok {
		r.mu.Unlock()
		return p, p != ""
	}
	r.mu.Unlock()

	resolved := r.resolveUncached(name)

	r.mu.Lock()
	r.cache[name] = resolved
	r.mu.Unlock()

	return resolved, resolved != ""
}

func (r *PathResolver) resolveUncached(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutableFile(name) {
			abs, err := filepath.Abs(name)
			if err != nil {
				return name
			}
			return abs
		}
		return ""
	}

	for _, dir := range strings.Split(r.path(), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate
		}
	}
	return ""
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}

// Scan lists every executable file name in the PATH directories,
// de-duplicated, in directory order — used by the Completer (spec.md
// §4.9) for the path-executable half of its candidate set. Each call
// reads the directories afresh; the listing is not cached.
func (r *PathResolver) Scan() []string {
	var names []string
	seen := make(map[string]bool)
	for _, dir := range strings.Split(r.path(), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || seen[e.Name()] {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			seen[e.Name()] = true
			names = append(names, e.Name())
		}
	}
	return names
}
