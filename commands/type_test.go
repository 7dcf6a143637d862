package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var typeTestFiles = []string{
	"/usr/local/bin/python",
	"/usr/bin/python",
	"/usr/bin/echo",
	"/bin/ls",
}

func newTypeTestShell(t *testing.T) *testShell {
	return newTestShell(t, "/usr/local/bin:/usr/bin:/bin", typeTestFiles)
}

func TestTypeGolden(t *testing.T) {
	cases := goldenTestSuite{
		"type":            {[]string{"type echo ls nope"}},
		"type-all":        {[]string{"type -a echo python"}},
		"type-kind":       {[]string{"type -t cd ls nope"}},
		"type-path-order": {[]string{"type python", "type python"}},
	}

	cases.Run(t, newTypeTestShell)
}

func TestTypeStatus(t *testing.T) {
	ts := newTypeTestShell(t)

	assert.Equal(t, 0, ts.run("type echo ls"))
	assert.Equal(t, 1, ts.run("type ls nope"))
	assert.Equal(t, 1, ts.run("type -t nope"))
}

func TestTypeUsesCache(t *testing.T) {
	ts := newTypeTestShell(t)

	ts.run("type python")
	scans := ts.Resolver.Scans()
	ts.run("type python")
	assert.Equal(t, scans, ts.Resolver.Scans())
}
