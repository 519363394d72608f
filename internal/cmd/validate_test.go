package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/hevcparam/internal/config"
	"github.com/harrison/hevcparam/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCommand_Valid(t *testing.T) {
	var output bytes.Buffer
	err := validateWithOutput(config.DefaultConfig(), []string{"ref=5", "crf=20", "bframes=6"}, nil, &output)
	require.NoError(t, err)

	if !strings.Contains(output.String(), "Configuration is valid") {
		t.Errorf("Expected success message, got: %s", output.String())
	}
}

func TestValidateCommand_Failure(t *testing.T) {
	var output bytes.Buffer
	err := validateWithOutput(config.DefaultConfig(), []string{"qp=-10"}, nil, &output)

	var verr *param.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, output.String(), fmt.Sprintf("Validation failed: %d problem(s)", verr.Count()))
	for _, f := range verr.Failures {
		assert.Contains(t, output.String(), "  - "+f)
	}
}

func TestValidateCommand_BuildError(t *testing.T) {
	var output bytes.Buffer
	err := validateWithOutput(config.DefaultConfig(), []string{"no-such-option"}, nil, &output)
	assert.ErrorIs(t, err, param.ErrBadName)
	assert.Contains(t, output.String(), "Build failed:")
	assert.Contains(t, output.String(), "hevcparam options")
}

func TestValidateCommand_ZoneFile(t *testing.T) {
	zones := writeTestFile(t, "zones.txt", "# two zones\n0 crf=18\n100 crf=24\n")

	out, _, err := runCLI(t, "validate", "--zonefile", zones)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Zones: 2")
}

func TestValidateCommand_BadZoneFile(t *testing.T) {
	zones := writeTestFile(t, "zones.txt", "0 crf=18\n100 --me warp\n")
	_, _, err := runCLI(t, "validate", "--zonefile", zones)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zones.txt:2")
}

func TestValidateCommand_InvalidZone(t *testing.T) {
	zones := writeTestFile(t, "zones.txt", "0 ctu=48\n")
	out, stderr, err := runCLI(t, "validate", "--zonefile", zones)

	var verr *param.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Failures, "zone 0 (frames 0-): max cu size must be 16, 32, or 64")
	assert.Contains(t, out, "Validation failed: 1 problem(s)")
	assert.Contains(t, stderr, "[ERROR]")
}

func TestValidateCommand_LambdaFile(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2*(param.QPMaxMax+1); i++ {
		fmt.Fprintf(&sb, "%d\n", i+1)
	}
	lambda := writeTestFile(t, "lambda.txt", sb.String())

	out, _, err := runCLI(t, "validate", "lambda-file="+lambda)
	require.NoError(t, err)
	assert.Contains(t, out, "Lambda tables: "+lambda)

	short := writeTestFile(t, "short.txt", "1 2 3\n")
	_, stderr, err := runCLI(t, "validate", "lambda-file="+short)
	assert.Error(t, err)
	assert.Contains(t, stderr, "[ERROR]")
}

func TestValidateCommand_ConfigFileOrder(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", `preset: slow
options:
  crf: 18
  bframes: 3
`)

	out, _, err := runCLI(t, "show", "--config", cfgPath, "crf=22")
	require.NoError(t, err)
	assert.Contains(t, out, "crf=22.0000", "command line options apply after config options")
	assert.Contains(t, out, "bframes=3")

	out, _, err = runCLI(t, "show", "--config", cfgPath, "--preset", "fast")
	require.NoError(t, err)
	want, err := param.New("fast", "")
	require.NoError(t, err)
	require.NoError(t, want.ApplyAll([]param.Setting{param.NewSetting("crf", "18"), param.NewSetting("bframes", "3")}))
	assert.Equal(t, want.String()+"\n", out)
}

func TestValidateCommand_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "hevcparam.log")
	_, _, err := runCLI(t, "validate", "--log-file", logPath, "qp=-10")
	require.Error(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ERROR]")
}

func TestValidateCommand_BadLogLevel(t *testing.T) {
	_, _, err := runCLI(t, "validate", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log_level")
}
