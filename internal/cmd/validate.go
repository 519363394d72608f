package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/hevcparam/internal/config"
	"github.com/harrison/hevcparam/internal/display"
	"github.com/harrison/hevcparam/internal/logger"
	"github.com/harrison/hevcparam/internal/param"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [option...]",
		Short: "Check a configuration for consistency",
		Long: `Build a configuration and run every cross-field check on it.

Every failed check is logged on its own line so all problems can be fixed
in one pass. Unknown options, bad values and unreadable zone or lambda
files stop the build before validation.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			return validateWithOutput(s.cfg, args, s.log, cmd.OutOrStdout())
		},
	}

	return cmd
}

// validateWithOutput builds and validates with a custom output writer (for testing)
func validateWithOutput(cfg *config.Config, tokens []string, log param.Logger, output io.Writer) error {
	pal := logger.NewPalette(output)

	b, err := buildParam(cfg, tokens, log)
	if err != nil {
		w := display.Warning{Title: "Build failed: " + err.Error()}
		if errors.Is(err, param.ErrBadName) {
			w.Suggestion = "Run 'hevcparam options' to list accepted option names"
		}
		w.Display(output)
		return err
	}

	if n := len(b.Failures); n > 0 {
		display.Warning{
			Title:      fmt.Sprintf("Validation failed: %d problem(s)", n),
			Items:      b.Failures,
			Suggestion: "Adjust the options named above and run validate again",
		}.Display(output)
		return &param.ValidationError{Failures: b.Failures}
	}

	fmt.Fprintln(output, pal.Success("Configuration is valid"))
	if zones := len(b.Param.RC.Zones); zones > 0 {
		fmt.Fprintf(output, "  Zones: %d\n", zones)
	}
	if b.Lambda != nil {
		fmt.Fprintf(output, "  Lambda tables: %s\n", b.Param.RC.LambdaFileName)
	}
	return nil
}
