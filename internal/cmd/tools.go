package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/hevcparam/internal/logger"
	"github.com/harrison/hevcparam/internal/param"
	"github.com/spf13/cobra"
)

// NewToolsCommand creates the tools command
func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [option...]",
		Short: "Summarize the coding tools a configuration enables",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := buildValid(cmd, args)
			if err != nil {
				return err
			}
			printTools(b.Param, cmd.OutOrStdout())
			return nil
		},
	}
}

func printTools(p *param.Param, w io.Writer) {
	pal := logger.NewPalette(w)
	for _, line := range p.ToolSummary() {
		label, rest, ok := strings.Cut(line, ":")
		if !ok {
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintf(w, "%s:%s\n", pal.Label(label), rest)
	}
}
