// Package cli implements the datagraph command-line interface.
//
// # Commands
//
//   - convert: read a body in one format and write it in another
//   - dump: print the indented text dump of a body
//   - diff: compare the text dumps of two bodies
//
// All commands accept --verbose (-v) for debug logging and --config to load
// a YAML or TOML configuration file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/datagraph/internal/config"
	"github.com/reoring/datagraph/processor"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	cfg        *config.Config
	logErr     io.Writer
}

// Execute runs the datagraph CLI.
func Execute() error {
	return newRootCmd(os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(logErr io.Writer) *cobra.Command {
	a := &app{logErr: logErr}
	root := &cobra.Command{
		Use:          "datagraph",
		Short:        "Convert, dump and compare JSON, XML, form and multipart bodies",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(a.logErr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.configPath != "" {
				logger.Debug("config loaded", "path", a.configPath)
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("datagraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newDiffCmd(a))
	return root
}

// processor builds a processor from the loaded configuration.
func (a *app) processor(ctx context.Context) (*processor.Processor, error) {
	pc, err := a.cfg.Processor()
	if err != nil {
		return nil, err
	}
	return processor.New(pc, processor.WithLogger(loggerFromContext(ctx))), nil
}
