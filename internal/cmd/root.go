package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for hevcparam
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hevcparam",
		Short: "Build, validate and print HEVC encoder configurations",
		Long: `hevcparam resolves an HEVC encoder configuration the way the encoder
front end does: base defaults, then a preset, then a tune, then options
from .hevcparam/config.yaml, then options given on the command line, and
finally per-frame-range zones from a zone file.

Options are given after the subcommand as name=value, a bare name for
booleans, or no-name to negate. Use -- before options written
as --name=value.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addBuildFlags(cmd)

	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewToolsCommand())
	cmd.AddCommand(NewOptionsCommand())

	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("preset", "p", "", "Preset name or index (ultrafast ... placebo, default medium)")
	flags.StringP("tune", "t", "", "Tune name or index (psnr, ssim, grain, zerolatency, fastdecode, animation, littlepox, vcb-s)")
	flags.String("zonefile", "", "Zone file compiled after all options")
	flags.String("config", "", "Path to config file (default: nearest .hevcparam/config.yaml)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-file", "", "Also write log lines to this file")
}
