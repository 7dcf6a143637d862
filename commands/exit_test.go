package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExit(t *testing.T) {
	cases := map[string]struct {
		lines  []string
		code   int
		exited bool
		stderr string
	}{
		"default":         {[]string{"exit"}, 0, true, ""},
		"explicit":        {[]string{"exit 3"}, 3, true, ""},
		"wraps":           {[]string{"exit 258"}, 2, true, ""},
		"last status":     {[]string{"nope", "exit"}, 127, true, "nope: command not found\n"},
		"non-numeric":     {[]string{"exit abc"}, 2, true, "exit: abc: numeric argument required\n"},
		"too many":        {[]string{"exit 1 2"}, 0, false, "exit: too many arguments\n"},
		"stops the shell": {[]string{"exit 4", "echo unreachable"}, 4, true, ""},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestShell(t, "", nil)

			ret := ts.RunScript(context.Background(), tc.lines)

			code, exited := ts.Exited()
			assert.Equal(t, tc.exited, exited)
			if tc.exited {
				assert.Equal(t, tc.code, code)
				assert.Equal(t, tc.code, ret)
			}
			assert.Equal(t, tc.stderr, ts.err.String())
			assert.Empty(t, ts.out.String())
		})
	}
}
