package builtin_test

import (
	"bytes"
	"context"
	"testing"

	"poshell/internal/builtin"
	"github.com/stretchr/testify/assert"
)

func TestCd_NoArgsGoesHome(t *testing.T) {
	dir := &fakeDir{cwd: "/var/tmp", home: "/home/alice"}
	env := &builtin.Env{Dir: dir, Stderr: &bytes.Buffer{}}

	code := builtin.Cd(context.Background(), env, nil)

	assert.Equal(t, 0, code)
	assert.Equal(t, "/home/alice", dir.Get())
}

func TestCd_TildeGoesHome(t *testing.T) {
	dir := &fakeDir{cwd: "/var/tmp", home: "/home/alice"}
	env := &builtin.Env{Dir: dir, Stderr: &bytes.Buffer{}}

	builtin.Cd(context.Background(), env, []string{"~"})

	assert.Equal(t, "/home/alice", dir.Get())
}

func TestCd_MissingDirectory(t *testing.T) {
	dir := &fakeDir{cwd: "/var/tmp", home: "/home/alice"}
	var stderr bytes.Buffer
	env := &builtin.Env{Dir: dir, Stderr: &stderr}

	code := builtin.Cd(context.Background(), env, []string{"/nonexistent"})

	assert.Equal(t, 1, code)
	assert.Equal(t, "cd: /nonexistent: No such file or directory\n", stderr.String())
	assert.Equal(t, "/var/tmp", dir.Get()) // unchanged on failure
}
