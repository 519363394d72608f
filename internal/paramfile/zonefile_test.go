package paramfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/hevcparam/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseZones(t *testing.T) {
	input := "# zones for the trailer\r\n" +
		"0 crf=18\r\n" +
		"\r\n" +
		"100 --crf=24 --no-sao\n" +
		"250 --qp 30 --aq-mode 0\n"

	entries, err := ParseZones(strings.NewReader(input), "zones.txt")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, 0, entries[0].Spec.StartFrame)
	assert.Equal(t, 99, entries[0].Spec.EndFrame)
	assert.Equal(t, []param.Setting{param.NewSetting("crf", "18")}, entries[0].Spec.Settings)

	assert.Equal(t, 4, entries[1].Line)
	assert.Equal(t, 249, entries[1].Spec.EndFrame)
	assert.Equal(t, []param.Setting{param.NewSetting("--crf", "24"), param.Flag("--no-sao")}, entries[1].Spec.Settings)

	assert.Equal(t, param.OpenEnded, entries[2].Spec.EndFrame)
	assert.Equal(t, []param.Setting{param.NewSetting("--qp", "30"), param.NewSetting("--aq-mode", "0")}, entries[2].Spec.Settings)
}

func TestParseZonesUnsorted(t *testing.T) {
	entries, err := ParseZones(strings.NewReader("500 crf=30\n0 crf=20\n"), "z")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, param.OpenEnded, entries[0].Spec.EndFrame)
	assert.Equal(t, 499, entries[1].Spec.EndFrame)
}

func TestParseZonesBadStart(t *testing.T) {
	_, err := ParseZones(strings.NewReader("0 crf=20\nlater crf=30\n"), "zones.txt")
	require.Error(t, err)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Line)
	assert.ErrorIs(t, err, param.ErrBadValue)
	assert.Contains(t, err.Error(), "zones.txt:2")
}

func TestLoadZones(t *testing.T) {
	path := writeFile(t, "zones.txt", "0 crf=18\n100 crf=24\n")
	p := param.Default()

	require.NoError(t, LoadZones(p, path))
	require.Len(t, p.RC.Zones, 2)
	assert.Equal(t, 0, p.RC.Zones[0].StartFrame)
	assert.Equal(t, 100, p.RC.Zones[1].StartFrame)
	assert.Equal(t, 18.0, p.RC.Zones[0].Param.RC.RFConstant)
	assert.Equal(t, 24.0, p.RC.Zones[1].Param.RC.RFConstant)
	assert.Equal(t, 28.0, p.RC.RFConstant, "the base record keeps its own target")
}

func TestLoadZonesFailureIsAtomic(t *testing.T) {
	path := writeFile(t, "zones.txt", "0 crf=18\n100 --bframes lots\n")
	p := param.Default()

	err := LoadZones(p, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrBadValue)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Line)
	assert.Nil(t, p.RC.Zones)
}

func TestLoadZonesMissingFile(t *testing.T) {
	err := LoadZones(param.Default(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "open zone file", re.Op)
}
