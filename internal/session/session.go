// Package session holds the shell's working-directory state: the one
// piece of mutable ambient context `cd` and `pwd` share (spec.md §3's Session state, trimmed to a local POSIX shell's
// actual needs — no remote workspace, vault, or cache concepts).
package session

import "os"

// Session tracks the process's current and home directories and
// satisfies builtin.Dir so `cd`/`pwd` can operate on it directly.
type Session struct {
	CWD     string
	HomeDir string
}

// New builds a Session from the process's actual working directory
// and $HOME.
func New() (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Session{CWD: cwd, HomeDir: os.Getenv("HOME")}, nil
}

// Get returns the current working directory.
func (s *Session) Get() string { return s.CWD }

// Home returns $HOME, as captured at startup.
func (s *Session) Home() string { return s.HomeDir }

// Set chdirs the process to path and, on success, records the new
// absolute working directory (spec.md §4.5 `cd`).
func (s *Session) Set(path string) error {
	if err := os.Chdir(path); err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	s.CWD = cwd
	return nil
}
