// Package cli implements the forcegraph command-line interface.
//
// The main commands are:
//   - gen: generate a graph file for a standard topology
//   - layout: run the simulation to equilibrium and export the result
//   - watch: watch the simulation live in an interactive terminal view
//   - serve: expose the running simulation over a read-only HTTP API
//
// All commands support --verbose (-v) for debug-level logging and
// --params for a TOML file overriding the default force constants.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/esonju/forcegraph/pkg/buildinfo"
	"github.com/esonju/forcegraph/pkg/physics"
)

// appName is the application name used for display.
const appName = "forcegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	paramsFile string
	seed       int64
}

// New creates a new CLI instance with a timestamped stderr logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Forcegraph lays out graphs with a force-directed physics simulation",
		Long:         `Forcegraph computes 2-D graph layouts by simulating repulsion between nodes, spring attraction along edges, and optional gravity, until the arrangement settles into a legible picture.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.paramsFile, "params", "", "TOML file overriding force parameters")
	root.PersistentFlags().Int64Var(&c.seed, "seed", 0, "random seed for initial placement (0 = time-based)")

	root.AddCommand(c.genCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadParams resolves the force parameters for a run: defaults,
// optionally overridden by --params.
func (c *CLI) loadParams() (physics.Params, error) {
	if c.paramsFile == "" {
		return physics.DefaultParams(), nil
	}
	p, err := physics.LoadParams(c.paramsFile)
	if err != nil {
		return p, fmt.Errorf("load params: %w", err)
	}
	c.Logger.Debug("loaded force parameters", "file", c.paramsFile)
	return p, nil
}
