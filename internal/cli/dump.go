package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reoring/datagraph/internal/config"
	"github.com/reoring/datagraph/processor"
	"github.com/reoring/datagraph/writer"
)

func newDumpCmd(a *app) *cobra.Command {
	var from, colorMode string
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the text dump of a body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := argOrEmpty(args)
			v, err := parseFile(cmd, a, from, file)
			if err != nil {
				return err
			}
			if colorMode == "" {
				colorMode = a.cfg.Color
			}
			w := &writer.Text{Color: useColor(colorMode, cmd.OutOrStdout())}
			s, err := w.Write(v)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), s)
			return err
		},
	}
	fromFlag(cmd.Flags(), &from)
	colorFlag(cmd.Flags(), &colorMode)
	return cmd
}

// parseFile reads and parses one input with the configured processor.
func parseFile(cmd *cobra.Command, a *app, from, file string) (any, error) {
	proc, err := a.processor(cmd.Context())
	if err != nil {
		return nil, err
	}
	ct, err := contentType(from, file)
	if err != nil {
		return nil, err
	}
	data, err := readInput(cmd, file)
	if err != nil {
		return nil, err
	}
	v, err := proc.Parse(processor.NewPayload(data, ct))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(file), err)
	}
	return v, nil
}

// useColor resolves a colour mode; auto colours only terminals.
func useColor(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func displayName(file string) string {
	if file == "" || file == "-" {
		return "stdin"
	}
	return file
}
