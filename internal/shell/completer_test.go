package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"poshell/internal/builtin"
	"poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_NoMatchesRingsBell(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := shell.NewCompleter(builtin.NewRegistry(), shell.NewPathResolver())

	res := c.Tab("zzzznomatch")
	assert.True(t, res.Bell)
}

func TestCompleter_SingleMatchInsertsWithTrailingSpace(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := shell.NewCompleter(builtin.NewRegistry(), shell.NewPathResolver())

	res := c.Tab("ech")
	assert.Equal(t, "echo ", res.Insert)
}

func TestCompleter_MultipleMatchesExtendsToLCP(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typeset"), []byte{}, 0o755))
	t.Setenv("PATH", dir)
	c := shell.NewCompleter(builtin.NewRegistry(), shell.NewPathResolver())

	// "typ" matches builtin "type" and PATH executable "typeset": LCP
	// "type" is longer than the prefix, so it's returned directly.
	res := c.Tab("typ")
	assert.Equal(t, "type", res.Insert)
}

func TestCompleter_TwoTabsListsMatchesWhenLCPIsNoLonger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cd-helper"), []byte{}, 0o755))
	t.Setenv("PATH", dir)
	c := shell.NewCompleter(builtin.NewRegistry(), shell.NewPathResolver())

	first := c.Tab("cd")
	assert.True(t, first.Bell)

	second := c.Tab("cd")
	assert.True(t, second.ShowList)
	assert.ElementsMatch(t, []string{"cd", "cd-helper"}, second.Matches)
}

func TestCompleter_ResetClearsState(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := shell.NewCompleter(builtin.NewRegistry(), shell.NewPathResolver())

	c.Tab("ech")
	c.Reset()

	res := c.Tab("ech")
	assert.Equal(t, "echo ", res.Insert)
}
