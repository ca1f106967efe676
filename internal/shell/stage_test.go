package shell_test

import (
	"testing"

	"poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePipeline_EmptyLineIsNoOp(t *testing.T) {
	p, err := shell.ParsePipeline("   ")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParsePipeline_SingleStage(t *testing.T) {
	p, err := shell.ParsePipeline(`echo "a b c"`)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, p.Stages, 1)
	assert.Equal(t, []string{"echo", "a b c"}, p.Stages[0].Argv)
}

func TestParsePipeline_MultiStageWithRedirection(t *testing.T) {
	p, err := shell.ParsePipeline("echo a b c | wc -w > out.txt")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, p.Stages, 2)
	assert.Equal(t, []string{"echo", "a", "b", "c"}, p.Stages[0].Argv)
	assert.Equal(t, []string{"wc", "-w"}, p.Stages[1].Argv)
	require.NotNil(t, p.Stages[1].Redirects.Stdout)
	assert.Equal(t, "out.txt", p.Stages[1].Redirects.Stdout.Path)
}

func TestParsePipeline_EmptySegmentInMultiStageIsError(t *testing.T) {
	_, err := shell.ParsePipeline("echo a | | wc")
	assert.Error(t, err)
}

func TestParsePipeline_LexErrorPropagates(t *testing.T) {
	_, err := shell.ParsePipeline(`echo "unterminated`)
	assert.Error(t, err)
}
