package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/hevcparam/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTools(t *testing.T) {
	var buf bytes.Buffer
	p := param.Default()
	printTools(p, &buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, p.ToolSummary(), lines, "plain writers get the summary unchanged")
}

func TestToolsCommand(t *testing.T) {
	out, _, err := runCLI(t, "tools", "no-sao")
	require.NoError(t, err)
	assert.Contains(t, out, "Coding QT: max CU size, min CU size : 64 / 8")
	assert.Contains(t, out, "tools:")
	assert.NotContains(t, out, " sao")
}

func TestOptionsCommand(t *testing.T) {
	out, _, err := runCLI(t, "options")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(param.Options()))
	assert.Contains(t, lines, "sao [bool]")

	for _, o := range param.Options() {
		if len(o.Aliases) == 0 {
			continue
		}
		found := false
		for _, l := range lines {
			if strings.HasPrefix(l, o.Name+" (") && strings.Contains(l, o.Aliases[0]) {
				found = true
				break
			}
		}
		assert.True(t, found, "aliases of %s listed", o.Name)
	}
}
