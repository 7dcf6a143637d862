package commands

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLineDispatch(t *testing.T) {
	ts := newTestShell(t, "/bin", []string{"/bin/ls"})

	t.Run("empty lines keep the last status", func(t *testing.T) {
		ts.run("nope")
		assert.Equal(t, 127, ts.run("   "))
		assert.Equal(t, 127, ts.run(""))
	})

	t.Run("command not found", func(t *testing.T) {
		ts.err.Reset()
		assert.Equal(t, 127, ts.run("'no such' arg"))
		assert.Equal(t, "no such: command not found\n", ts.err.String())
	})

	t.Run("syntax error", func(t *testing.T) {
		ts.err.Reset()
		assert.Equal(t, 2, ts.run("echo hi >"))
		assert.Equal(t, "minish: syntax error near unexpected token `newline'\n", ts.err.String())
	})

	t.Run("builtins win over programs", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(ts.fs, "/bin/echo", nil, 0755))
		ts.out.Reset()
		assert.Equal(t, 0, ts.run("echo builtin"))
		assert.Equal(t, "builtin\n", ts.out.String())
	})
}

func TestRedirects(t *testing.T) {
	cases := map[string]struct {
		lines  []string
		file   string
		want   string
		stdout string
		stderr string
	}{
		"stdout": {
			lines: []string{"echo hello > out.txt"},
			file:  "/home/user/out.txt",
			want:  "hello\n",
		},
		"explicit stdout": {
			lines: []string{"echo hello 1> /tmp/out.txt"},
			file:  "/tmp/out.txt",
			want:  "hello\n",
		},
		"truncate": {
			lines: []string{"echo first > out.txt", "echo second > out.txt"},
			file:  "/home/user/out.txt",
			want:  "second\n",
		},
		"append": {
			lines: []string{"echo first >> out.txt", "echo second 1>> out.txt"},
			file:  "/home/user/out.txt",
			want:  "first\nsecond\n",
		},
		"stderr of missing command": {
			lines: []string{"nope 2> err.txt"},
			file:  "/home/user/err.txt",
			want:  "nope: command not found\n",
		},
		"stderr append": {
			lines: []string{"nope 2>> err.txt", "gone 2>> err.txt"},
			file:  "/home/user/err.txt",
			want:  "nope: command not found\ngone: command not found\n",
		},
		"stderr created even if unused": {
			lines:  []string{"echo hi 2> err.txt"},
			file:   "/home/user/err.txt",
			want:   "",
			stdout: "hi\n",
		},
		"last target wins": {
			lines: []string{"echo hi > a.txt > b.txt"},
			file:  "/home/user/b.txt",
			want:  "hi\n",
		},
		"relative to working directory": {
			lines: []string{"cd /tmp", "pwd > where"},
			file:  "/tmp/where",
			want:  "/tmp\n",
		},
		"builtin errors": {
			lines: []string{"cd /nope 2> err.txt"},
			file:  "/home/user/err.txt",
			want:  "cd: /nope: No such file or directory\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestShell(t, "", nil, "/tmp")
			ts.RunScript(context.Background(), tc.lines)

			contents, err := afero.ReadFile(ts.fs, tc.file)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(contents))
			assert.Equal(t, tc.stdout, ts.out.String())
			assert.Equal(t, tc.stderr, ts.err.String())
		})
	}
}

func TestRedirectOpenFailure(t *testing.T) {
	ts := newTestShell(t, "", nil)
	ts.fs = afero.NewReadOnlyFs(ts.fs)
	ts.Shell.FS = ts.fs

	assert.Equal(t, 1, ts.run("echo hi > out.txt"))
	assert.True(t, strings.HasPrefix(ts.err.String(), "minish: out.txt: "), ts.err.String())
	assert.Empty(t, ts.out.String())
}

func TestLookPath(t *testing.T) {
	ts := newTestShell(t, "/bin", []string{"/bin/ls", "/home/user/bin/tool"})
	require.NoError(t, afero.WriteFile(ts.fs, "/home/user/notes", nil, 0644))

	cases := map[string]struct {
		name  string
		path  string
		found bool
	}{
		"search path":       {"ls", "/bin/ls", true},
		"absolute":          {"/bin/ls", "/bin/ls", true},
		"relative":          {"bin/tool", "/home/user/bin/tool", true},
		"dot relative":      {"./bin/tool", "/home/user/bin/tool", true},
		"not executable":    {"./notes", "", false},
		"missing with path": {"/bin/nope", "", false},
		"directory":         {"/bin", "", false},
		"not on path":       {"tool", "", false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			path, found := ts.lookPath(tc.name)
			assert.Equal(t, tc.path, path)
			assert.Equal(t, tc.found, found)
		})
	}
}

func TestCompletionSeesBuiltinsAndPrograms(t *testing.T) {
	ts := newTestShell(t, "/bin", []string{"/bin/ed", "/bin/env"})

	assert.Equal(t, []string{"echo", "ed", "env", "exit"}, ts.Index.Complete("e"))
	assert.Empty(t, ts.Index.Complete("zz"))
}

func TestRunProgram(t *testing.T) {
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no true binary on this host")
	}
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("no false binary on this host")
	}

	env := vos.NewMapEnv()
	env.Setenv(vos.EnvPath, filepath.Dir(truePath))
	out := &bytes.Buffer{}
	s := NewShell(Options{
		Env:    env,
		FS:     vos.NewOsFs(),
		Dir:    t.TempDir(),
		Stdout: out,
		Stderr: out,
	})

	assert.Equal(t, 0, s.RunLine(context.Background(), truePath))
	assert.Equal(t, 1, s.RunLine(context.Background(), falsePath))
	assert.Equal(t, 0, s.RunLine(context.Background(), "true"))
	assert.Empty(t, out.String())
}

func TestRelativePathFollowsCd(t *testing.T) {
	ts := newTestShell(t, "bin:/usr/bin", []string{"/tmp/bin/tool"}, "/tmp")

	assert.Equal(t, 127, ts.run("tool"))
	assert.Equal(t, "tool: command not found\n", ts.err.String())
	assert.Empty(t, ts.Index.Complete("to"))

	require.Equal(t, 0, ts.run("cd /tmp"))

	path, found := ts.lookPath("tool")
	assert.True(t, found)
	assert.Equal(t, "/tmp/bin/tool", path)

	ts.out.Reset()
	assert.Equal(t, 0, ts.run("type tool"))
	assert.Equal(t, "tool is /tmp/bin/tool\n", ts.out.String())
	assert.Equal(t, []string{"tool"}, ts.Index.Complete("to"))

	t.Run("moving away hides it again", func(t *testing.T) {
		require.Equal(t, 0, ts.run("cd"))
		_, found := ts.lookPath("tool")
		assert.False(t, found)
	})
}
