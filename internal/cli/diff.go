package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/reoring/datagraph/writer"
)

// errDifferent is returned by diff --exit-code when the inputs differ.
var errDifferent = errors.New("inputs differ")

func newDiffCmd(a *app) *cobra.Command {
	var from, colorMode string
	var exitCode bool
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the text dumps of two bodies line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dumps := make([]string, 2)
			for i, file := range args {
				v, err := parseFile(cmd, a, from, file)
				if err != nil {
					return err
				}
				if dumps[i], err = (&writer.Text{}).Write(v); err != nil {
					return err
				}
			}
			if colorMode == "" {
				colorMode = a.cfg.Color
			}
			changed, err := writeDiff(cmd.OutOrStdout(), args[0], args[1], dumps[0], dumps[1], useColor(colorMode, cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("diff done", "changed", changed)
			if changed && exitCode {
				return errDifferent
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "input type of both files (guessed from the extension by default)")
	colorFlag(cmd.Flags(), &colorMode)
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "fail when the inputs differ")
	return cmd
}

// writeDiff prints a line diff of a and b and reports whether they differ.
// Nothing is printed for equal inputs.
func writeDiff(w io.Writer, nameA, nameB, a, b string, colored bool) (bool, error) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	changed := false
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return false, nil
	}

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		red, green := color.New(color.FgRed), color.New(color.FgGreen)
		red.EnableColor()
		green.EnableColor()
		del, ins = red.Sprint, green.Sprint
	}
	var b2 strings.Builder
	fmt.Fprintf(&b2, "--- %s\n+++ %s\n", nameA, nameB)
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", del
		case diffpatch.DiffInsert:
			prefix, paint = "+", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b2.WriteString(paint(prefix + strings.TrimSuffix(line, "\n")))
			b2.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b2.String())
	return true, err
}
