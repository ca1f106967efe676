package builtin_test

import (
	"errors"
	"path/filepath"

	"poshell/internal/builtin"
)

// fakeDir is a minimal builtin.Dir for tests.
type fakeDir struct {
	cwd  string
	home string
}

func (d *fakeDir) Get() string  { return d.cwd }
func (d *fakeDir) Home() string { return d.home }
func (d *fakeDir) Set(path string) error {
	if path == "/nonexistent" {
		return errors.New("no such directory")
	}
	d.cwd = filepath.Clean(path)
	return nil
}

// fakeResolver is a minimal builtin.Resolver for tests.
type fakeResolver struct {
	found map[string]string
}

func (r *fakeResolver) Resolve(name string) (string, bool) {
	p, ok := r.found[name]
	return p, ok
}

// fakeHistory is a minimal builtin.History for tests.
type fakeHistory struct {
	entries []builtin.HistoryEntry
	written map[string][]builtin.HistoryEntry
}

func newFakeHistory(texts ...string) *fakeHistory {
	h := &fakeHistory{written: make(map[string][]builtin.HistoryEntry)}
	for i, t := range texts {
		h.entries = append(h.entries, builtin.HistoryEntry{Seq: i + 1, Text: t})
	}
	return h
}

func (h *fakeHistory) All() []builtin.HistoryEntry { return h.entries }

func (h *fakeHistory) Last(n int) []builtin.HistoryEntry {
	if n >= len(h.entries) {
		return h.entries
	}
	return h.entries[len(h.entries)-n:]
}

func (h *fakeHistory) Clear() { h.entries = nil }

func (h *fakeHistory) Write(path string) error {
	cp := append([]builtin.HistoryEntry(nil), h.entries...)
	h.written[path] = cp
	return nil
}

func (h *fakeHistory) Read(path string) error { return nil }

func (h *fakeHistory) Append(path string) error {
	cp := append([]builtin.HistoryEntry(nil), h.entries...)
	h.written[path] = cp
	return nil
}
