package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/hevcparam/internal/param"
	"github.com/spf13/cobra"
)

// NewOptionsCommand creates the options command
func NewOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every option name the dispatcher accepts",
		Long: `List canonical option names in dispatch order, with aliases in
parentheses. Boolean options also accept a no- prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listOptions(cmd.OutOrStdout())
			return nil
		},
	}
}

func listOptions(w io.Writer) {
	for _, o := range param.Options() {
		line := o.Name
		if len(o.Aliases) > 0 {
			line += " (" + strings.Join(o.Aliases, ", ") + ")"
		}
		if o.Bool {
			line += " [bool]"
		}
		fmt.Fprintln(w, line)
	}
}
