package commands

import (
	"testing"

	"github.com/josephlewis42/minish/core/vos"
	"github.com/stretchr/testify/assert"
)

func TestCdPwd(t *testing.T) {
	cases := map[string]struct {
		line     string
		status   int
		expected string
		stderr   string
	}{
		"absolute":       {"cd /tmp", 0, "/tmp", ""},
		"relative":       {"cd projects/go", 0, "/home/user/projects/go", ""},
		"parent":         {"cd ..", 0, "/home", ""},
		"home":           {"cd", 0, "/home/user", ""},
		"tilde":          {"cd ~", 0, "/home/user", ""},
		"tilde subdir":   {"cd ~/projects", 0, "/home/user/projects", ""},
		"missing":        {"cd /nope", 1, "/home/user", "cd: /nope: No such file or directory\n"},
		"file":           {"cd /tmp/file", 1, "/home/user", "cd: /tmp/file: No such file or directory\n"},
		"too many args":  {"cd /tmp /home", 1, "/home/user", "cd: too many arguments\n"},
		"trailing slash": {"cd /tmp/", 0, "/tmp", ""},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestShell(t, "", []string{"/tmp/file"}, "/tmp", "/home/user/projects/go")

			assert.Equal(t, tc.status, ts.run(tc.line))
			assert.Equal(t, tc.stderr, ts.err.String())
			assert.Equal(t, tc.expected, ts.Getwd())
			assert.Equal(t, tc.expected, ts.env.Getenv(vos.EnvPWD))

			ts.run("pwd")
			assert.Equal(t, tc.expected+"\n", ts.out.String())
		})
	}
}

func TestCdReadsHomeLive(t *testing.T) {
	ts := newTestShell(t, "", nil, "/srv")
	ts.env.Setenv(vos.EnvHome, "/srv")

	assert.Equal(t, 0, ts.run("cd"))
	assert.Equal(t, "/srv", ts.Getwd())
}
