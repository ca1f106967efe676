package builtin_test

import (
	"bytes"
	"context"
	"testing"

	"poshell/internal/builtin"
	"github.com/stretchr/testify/assert"
)

func TestEcho_JoinsArgsWithNewline(t *testing.T) {
	var out bytes.Buffer
	env := &builtin.Env{Stdout: &out, Stderr: &out}

	code := builtin.Echo(context.Background(), env, []string{"hello", "world"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEcho_SuppressesNewlineWithFlag(t *testing.T) {
	var out bytes.Buffer
	env := &builtin.Env{Stdout: &out, Stderr: &out}

	builtin.Echo(context.Background(), env, []string{"-n", "hi"})

	assert.Equal(t, "hi", out.String())
}

func TestEcho_QuotedSpacingPreserved(t *testing.T) {
	// The lexer already folded "hello   world" into a single WORD by
	// the time it reaches echo; echo itself only joins distinct args.
	var out bytes.Buffer
	env := &builtin.Env{Stdout: &out, Stderr: &out}

	builtin.Echo(context.Background(), env, []string{"hello   world"})

	assert.Equal(t, "hello   world\n", out.String())
}

func TestEcho_DashNAfterFirstWordIsLiteral(t *testing.T) {
	var out bytes.Buffer
	env := &builtin.Env{Stdout: &out, Stderr: &out}

	builtin.Echo(context.Background(), env, []string{"hi", "-n"})

	assert.Equal(t, "hi -n\n", out.String())
}
