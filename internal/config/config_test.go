package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/hevcparam/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Preset != "" || cfg.Tune != "" {
		t.Errorf("Preset/Tune = %q/%q, want empty", cfg.Preset, cfg.Tune)
	}
	if cfg.Options != nil {
		t.Errorf("Options = %v, want nil", cfg.Options)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `log_level: debug
log_file: /tmp/hevcparam.log
preset: slow
tune: grain
zone_file: zones.txt
lambda_file: lambda.txt
options:
  ref: 5
  crf: 20
  no-sao: ~
  cutree:
  bframes: 6
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/hevcparam.log", cfg.LogFile)
	assert.Equal(t, "slow", cfg.Preset)
	assert.Equal(t, "grain", cfg.Tune)
	assert.Equal(t, "zones.txt", cfg.ZoneFile)
	assert.Equal(t, "lambda.txt", cfg.LambdaFile)

	want := Options{
		param.NewSetting("ref", "5"),
		param.NewSetting("crf", "20"),
		param.Flag("no-sao"),
		param.Flag("cutree"),
		param.NewSetting("bframes", "6"),
	}
	assert.Equal(t, want, cfg.Options, "options keep file order")
}

func TestLoadConfigOptionsApply(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "options:\n  crf: 18\n  no-sao: ~\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	p := param.Default()
	require.NoError(t, p.ApplyAll(cfg.Options))
	assert.Equal(t, 18.0, p.RC.RFConstant)
	assert.False(t, p.SAO)
}

// TestLoadConfigMissingFile returns defaults without error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "log_level: [unclosed\n"},
		{"options not a mapping", "options:\n  - crf=20\n"},
		{"nested option value", "options:\n  crf:\n    value: 20\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, DirName), 0755))
	writeConfig(t, filepath.Join(dir, DirName), "preset: veryfast\n")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "veryfast", cfg.Preset)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "slow"
	cfg.Tune = "grain"

	level := "warn"
	preset := "fast"
	cfg.MergeWithFlags(&level, nil, &preset, nil, nil)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "fast", cfg.Preset)
	assert.Equal(t, "grain", cfg.Tune, "nil flags keep file values")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"preset by name", func(c *Config) { c.Preset = "placebo" }, false},
		{"preset by index", func(c *Config) { c.Preset = "3" }, false},
		{"anime tune", func(c *Config) { c.Tune = "vcb-s++" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad preset", func(c *Config) { c.Preset = "warp" }, true},
		{"bad tune", func(c *Config) { c.Tune = "cartoon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Preset = "warp"
	assert.ErrorIs(t, cfg.Validate(), param.ErrUnknownPreset)
}

func TestFindConfigPath(t *testing.T) {
	t.Run("walks up to the nearest settings dir", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, DirName), 0755))
		want := writeConfig(t, filepath.Join(root, DirName), "preset: fast\n")

		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))
		assert.Equal(t, want, FindConfigPath(nested))
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(EnvConfig, "/etc/hevcparam.yaml")
		assert.Equal(t, "/etc/hevcparam.yaml", FindConfigPath(t.TempDir()))
	})
}
