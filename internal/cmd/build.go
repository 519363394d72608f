package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/hevcparam/internal/config"
	"github.com/harrison/hevcparam/internal/logger"
	"github.com/harrison/hevcparam/internal/param"
	"github.com/harrison/hevcparam/internal/paramfile"
	"github.com/spf13/cobra"
)

// session is everything a subcommand needs to build a record: the merged
// front-end settings and the logger they select.
type session struct {
	cfg    *config.Config
	log    param.Logger
	closer io.Closer
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// build holds the outcome of buildParam. Failures is set when the record
// was assembled but did not validate.
type build struct {
	Param    *param.Param
	Lambda   *paramfile.LambdaTables
	Failures []string
}

// newSession loads the config file, merges persistent flags into it and
// opens the loggers.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		configPath = config.FindConfigPath(wd)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	changed := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	cfg.MergeWithFlags(changed("log-level"), changed("log-file"), changed("preset"), changed("tune"), changed("zonefile"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &session{cfg: cfg}
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.LogFile == "" {
		s.log = console
		return s, nil
	}
	fl, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s.log = logger.Multi{console, fl}
	s.closer = fl
	return s, nil
}

// buildParam runs the full cascade: preset and tune, config options,
// command line tokens, the fast first pass reductions, zone file,
// validation, then the lambda table.
// A validation failure is not an error here; it is reported through
// build.Failures so callers can print every problem.
func buildParam(cfg *config.Config, tokens []string, log param.Logger) (*build, error) {
	p, err := param.New(cfg.Preset, cfg.Tune)
	if err != nil {
		return nil, err
	}

	if err := p.ApplyAll(cfg.Options); err != nil {
		return nil, fmt.Errorf("config option: %w", err)
	}
	if cfg.LambdaFile != "" {
		p.RC.LambdaFileName = cfg.LambdaFile
	}

	for _, tok := range tokens {
		if err := p.Apply(param.ParseSetting(tok)); err != nil {
			return nil, err
		}
	}
	if !p.RC.SlowFirstPass {
		p.ApplyFastFirstPass()
	}

	if cfg.ZoneFile != "" {
		if err := paramfile.LoadZones(p, cfg.ZoneFile); err != nil {
			return nil, err
		}
	}

	b := &build{Param: p}
	if err := p.Validate(log); err != nil {
		var verr *param.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		b.Failures = verr.Failures
		return b, nil
	}

	if p.RC.LambdaFileName != "" {
		b.Lambda, err = paramfile.ReadLambdaFile(p.RC.LambdaFileName, log)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// buildValid is buildParam for commands that need a valid record.
func buildValid(cmd *cobra.Command, args []string) (*build, error) {
	s, err := newSession(cmd)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	b, err := buildParam(s.cfg, args, s.log)
	if err != nil {
		return nil, err
	}
	if len(b.Failures) > 0 {
		return nil, &param.ValidationError{Failures: b.Failures}
	}
	return b, nil
}
