package shell_test

import (
	"testing"

	"poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRedirection_ArgvOnly(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi world")
	require.NoError(t, err)

	argv, rds, err := shell.ResolveRedirection(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi", "world"}, argv)
	assert.Nil(t, rds.Stdout)
	assert.Nil(t, rds.Stderr)
}

func TestResolveRedirection_StdoutTruncate(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi > out.txt")
	require.NoError(t, err)

	argv, rds, err := shell.ResolveRedirection(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi"}, argv)
	require.NotNil(t, rds.Stdout)
	assert.Equal(t, "out.txt", rds.Stdout.Path)
	assert.Equal(t, shell.RedirTruncate, rds.Stdout.Mode)
}

func TestResolveRedirection_StderrAppend(t *testing.T) {
	tokens, err := shell.Tokenize("cmd 2>> err.log")
	require.NoError(t, err)

	argv, rds, err := shell.ResolveRedirection(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd"}, argv)
	require.NotNil(t, rds.Stderr)
	assert.Equal(t, "err.log", rds.Stderr.Path)
	assert.Equal(t, shell.RedirAppend, rds.Stderr.Mode)
}

func TestResolveRedirection_SameFDTwiceLaterWins(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi > a > b")
	require.NoError(t, err)

	argv, rds, err := shell.ResolveRedirection(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi"}, argv)
	require.NotNil(t, rds.Stdout)
	assert.Equal(t, "b", rds.Stdout.Path)
}

func TestResolveRedirection_MissingTargetIsParseError(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi >")
	require.NoError(t, err)

	_, _, err = shell.ResolveRedirection(tokens)
	assert.Error(t, err)
}

func TestResolveRedirection_EmptyArgvWithRedirectIsParseError(t *testing.T) {
	tokens, err := shell.Tokenize("> out.txt")
	require.NoError(t, err)

	_, _, err = shell.ResolveRedirection(tokens)
	assert.Error(t, err)
}
