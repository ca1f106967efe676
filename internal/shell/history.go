package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"poshell/internal/builtin"
)

// HistoryStore is the in-memory ordered command log plus per-path sync
// cursors (spec.md §3, §4.8). It satisfies builtin.History so the
// `history` builtin can drive it directly.
type HistoryStore struct {
	mu      sync.Mutex
	entries []builtin.HistoryEntry
	cursors map[string]int // path -> count already synced
}

// NewHistoryStore returns an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{cursors: make(map[string]int)}
}

// Record appends text as the next entry, skipping it if it is blank
// after trimming or identical to the immediately previous entry
// (spec.md §4.8).
func (h *HistoryStore) Record(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1].Text == text {
		return
	}
	h.entries = append(h.entries, builtin.HistoryEntry{Seq: len(h.entries) + 1, Text: text})
}

// All returns every recorded entry, in order.
func (h *HistoryStore) All() []builtin.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]builtin.HistoryEntry(nil), h.entries...)
}

// Last returns the final n entries (or all of them, if there are
// fewer than n), preserving their original Seq.
func (h *HistoryStore) Last(n int) []builtin.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n >= len(h.entries) || n < 0 {
		return append([]builtin.HistoryEntry(nil), h.entries...)
	}
	return append([]builtin.HistoryEntry(nil), h.entries[len(h.entries)-n:]...)
}

// Clear empties in-memory history. Sync cursors are left alone: a
// later Append against a path that was already fully synced simply
// writes nothing further, it does not rewind the file.
func (h *HistoryStore) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// Write truncates path and writes every entry to it, LF-separated.
func (h *HistoryStore) Write(path string) error {
	h.mu.Lock()
	entries := append([]builtin.HistoryEntry(nil), h.entries...)
	h.mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Text); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	h.mu.Lock()
	h.cursors[path] = len(entries)
	h.mu.Unlock()
	return nil
}

// Read appends path's contents (blank lines skipped) to in-memory
// history and advances path's cursor to the new total length.
func (h *HistoryStore) Read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range lines {
		h.entries = append(h.entries, builtin.HistoryEntry{Seq: len(h.entries) + 1, Text: line})
	}
	h.cursors[path] = len(h.entries)
	return nil
}

// Append opens path for appending and writes every entry recorded
// since the last sync to that path, advancing its cursor. A second
// Append with no intervening Record writes zero bytes (spec.md §8
// invariant 4).
func (h *HistoryStore) Append(path string) error {
	h.mu.Lock()
	start := h.cursors[path]
	if start > len(h.entries) {
		start = len(h.entries)
	}
	pending := append([]builtin.HistoryEntry(nil), h.entries[start:]...)
	h.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range pending {
		if _, err := fmt.Fprintln(w, e.Text); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	h.mu.Lock()
	h.cursors[path] = len(h.entries)
	h.mu.Unlock()
	return nil
}
