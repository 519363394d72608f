package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/hevcparam/internal/logger"
	"github.com/harrison/hevcparam/internal/param"
	"gopkg.in/yaml.v3"
)

// Config represents hevcparam front-end settings
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives a copy of every log line
	LogFile string `yaml:"log_file"`

	// Preset and Tune select the default cascade; empty means medium / none
	Preset string `yaml:"preset"`
	Tune   string `yaml:"tune"`

	// ZoneFile is compiled after all options are applied
	ZoneFile string `yaml:"zone_file"`

	// LambdaFile overrides the record's lambda-file option when set
	LambdaFile string `yaml:"lambda_file"`

	// Options are applied in file order, before command line options
	Options Options `yaml:"options"`
}

// Options is an ordered list of option settings. In YAML it is a mapping;
// key order is kept because later options may override earlier ones.
type Options []param.Setting

// UnmarshalYAML decodes a mapping node in document order. A null or empty
// scalar is a setting without a value.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping", node.Line)
	}
	out := make(Options, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: option %q must have a scalar value", val.Line, key.Value)
		}
		if val.Tag == "!!null" || val.Value == "" {
			out = append(out, param.Flag(key.Value))
			continue
		}
		out = append(out, param.NewSetting(key.Value, val.Value))
	}
	*o = out
	return nil
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-empty values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	cfg.LogFile = fileCfg.LogFile
	cfg.Preset = fileCfg.Preset
	cfg.Tune = fileCfg.Tune
	cfg.ZoneFile = fileCfg.ZoneFile
	cfg.LambdaFile = fileCfg.LambdaFile
	cfg.Options = fileCfg.Options

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .hevcparam/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, logFile, preset, tune, zoneFile *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logFile != nil {
		c.LogFile = *logFile
	}
	if preset != nil {
		c.Preset = *preset
	}
	if tune != nil {
		c.Tune = *tune
	}
	if zoneFile != nil {
		c.ZoneFile = *zoneFile
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Preset != "" {
		if _, err := param.ResolvePreset(c.Preset); err != nil {
			return fmt.Errorf("preset: %w", err)
		}
	}

	if c.Tune != "" && !param.ValidTune(c.Tune) {
		return fmt.Errorf("tune %q: %w", c.Tune, param.ErrUnknownTune)
	}

	return nil
}
