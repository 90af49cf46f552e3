package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/datagraph/internal/mediatype"
	"github.com/reoring/datagraph/processor"
	"github.com/reoring/datagraph/transformer"
)

type convertOptions struct {
	from       string
	to         string
	patch      string
	mergePatch string
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a body between formats",
		Long: `Convert reads a body (from file or stdin), optionally applies a JSON patch
and writes it in the requested format. --to takes a writer name (json, xml,
jsonx, soap, form, atom, rss, html, text, yaml) or a media type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, opts, argOrEmpty(args))
		},
	}
	fromFlag(cmd.Flags(), &opts.from)
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "output writer name or media type (default from config)")
	cmd.Flags().StringVar(&opts.patch, "patch", "", "RFC 6902 JSON patch file applied before writing")
	cmd.Flags().StringVar(&opts.mergePatch, "merge-patch", "", "RFC 7386 merge patch file applied before writing")
	return cmd
}

func runConvert(cmd *cobra.Command, a *app, opts *convertOptions, file string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	proc, err := a.processor(ctx)
	if err != nil {
		return err
	}
	ct, err := contentType(opts.from, file)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, file)
	if err != nil {
		return err
	}
	in := processor.NewPayload(data, ct)
	if in.Transformer, err = patches(ct, opts); err != nil {
		return err
	}
	v, err := proc.Parse(in)
	if err != nil {
		return err
	}

	out := processor.NewPayload(v, "")
	to := opts.to
	if to == "" {
		to = a.cfg.Format
	}
	if strings.Contains(to, "/") {
		out.ContentType = to
	} else if name, ok := proc.Configuration().Writers.NameByFormat(to); ok {
		out.RWName = name
	} else {
		return fmt.Errorf("unknown output format %q", to)
	}
	s, err := proc.Write(out)
	if err != nil {
		return err
	}
	logger.Debug("converted", "from", ct, "to", to, "bytes", len(s))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(s, "\n"))
	return err
}

// patches returns the transformer chain for the input: the default
// transformer of the content type followed by the requested patches. It
// returns nil when no patch is requested so the processor default applies.
func patches(ct string, opts *convertOptions) (transformer.Transformer, error) {
	if opts.patch == "" && opts.mergePatch == "" {
		return nil, nil
	}
	var chain transformer.Composite
	if mt, err := mediatype.Parse(ct); err == nil {
		if t := transformer.Default(mt); t != nil {
			chain = append(chain, t)
		}
	}
	if opts.patch != "" {
		doc, err := os.ReadFile(opts.patch)
		if err != nil {
			return nil, err
		}
		p, err := transformer.NewJSONPatch(doc)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
	}
	if opts.mergePatch != "" {
		doc, err := os.ReadFile(opts.mergePatch)
		if err != nil {
			return nil, err
		}
		chain = append(chain, &transformer.MergePatch{Patch: doc})
	}
	return chain, nil
}
