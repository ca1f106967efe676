package shell_test

import (
	"testing"

	"poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPipeline_SingleSegment(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi")
	require.NoError(t, err)

	segments, err := shell.SplitPipeline(tokens)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, []string{"echo", "hi"}, words(segments[0]))
}

func TestSplitPipeline_MultipleSegments(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi | wc -w | cat")
	require.NoError(t, err)

	segments, err := shell.SplitPipeline(tokens)
	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, []string{"echo", "hi"}, words(segments[0]))
	assert.Equal(t, []string{"wc", "-w"}, words(segments[1]))
	assert.Equal(t, []string{"cat"}, words(segments[2]))
}

func TestSplitPipeline_LeadingPipeIsParseError(t *testing.T) {
	tokens, err := shell.Tokenize("| echo hi")
	require.NoError(t, err)

	_, err = shell.SplitPipeline(tokens)
	assert.Error(t, err)
}

func TestSplitPipeline_DoublePipeIsParseError(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi || wc")
	require.NoError(t, err)

	// The lexer has no && / || concept; "||" tokenizes as two adjacent
	// OP_PIPE tokens, producing an empty segment between them.
	_, err = shell.SplitPipeline(tokens)
	assert.Error(t, err)
}

func TestSplitPipeline_TrailingPipeIsParseError(t *testing.T) {
	tokens, err := shell.Tokenize("echo hi |")
	require.NoError(t, err)

	_, err = shell.SplitPipeline(tokens)
	assert.Error(t, err)
}
