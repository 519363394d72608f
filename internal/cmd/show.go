package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/harrison/hevcparam/internal/filelock"
	"github.com/harrison/hevcparam/internal/param"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [option...]",
		Short: "Print the resolved configuration",
		Long: `Build and validate a configuration, then print it.

The text format is the canonical one-line fingerprint: important settings,
"-----", secondary coding tools, "-----", diagnostic detail. Two records
with the same fingerprint encode the same way. The json format dumps the
whole record, zones included.

Examples:
  hevcparam show --preset slow crf=20 no-sao
  hevcparam show --format json -- --ref=5 --bframes=6
  hevcparam show --out run.fingerprint crf=18`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			b, err := buildValid(cmd, args)
			if err != nil {
				return err
			}
			return showParam(b.Param, format, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().String("out", "", "Also write the output to this file")

	return cmd
}

func renderParam(p *param.Param, format string) ([]byte, error) {
	switch format {
	case "text", "":
		return []byte(p.String() + "\n"), nil
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode configuration: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q, must be text or json", format)
}

func showParam(p *param.Param, format, out string, w io.Writer) error {
	data, err := renderParam(p, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if out != "" {
		if err := filelock.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
	}
	return nil
}
