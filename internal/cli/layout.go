package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/esonju/forcegraph/pkg/graph"
	"github.com/esonju/forcegraph/pkg/render"
	"github.com/esonju/forcegraph/pkg/sim"
)

// Output formats for the layout command.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// Equilibrium defaults, matching the original batch mode: stop when
// the summed node speeds drop below the threshold.
const (
	defaultThreshold = 0.1
	defaultMaxTicks  = 100000
)

// layoutCommand creates the layout command for batch layout runs.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		formats   string
		threshold float64
		maxTicks  int
		gravity   bool
		scale     float64
		labels    bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Run the simulation to equilibrium and export the layout",
		Long: `Run the simulation to equilibrium and export the layout.

The layout command loads a graph file, scatters the nodes randomly,
and ticks the physics until the total velocity drops below --threshold
(or --max-ticks is reached). The settled positions are written in one
or more formats: json (positions file), dot (Graphviz with pinned
positions), svg, png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], layoutOpts{
				output:    output,
				formats:   strings.Split(formats, ","),
				threshold: threshold,
				maxTicks:  maxTicks,
				gravity:   gravity,
				scale:     scale,
				labels:    labels,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formats, "format", "f", formatJSON, "output format(s): json, dot, svg, png (comma-separated)")
	cmd.Flags().Float64Var(&threshold, "threshold", defaultThreshold, "total velocity below which the layout counts as settled")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", defaultMaxTicks, "tick limit for the equilibrium search")
	cmd.Flags().BoolVarP(&gravity, "gravity", "g", false, "enable gravity toward the center")
	cmd.Flags().Float64Var(&scale, "scale", render.DefaultScale, "points per simulation unit in dot/svg/png output")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw node ids in dot/svg/png output")

	return cmd
}

type layoutOpts struct {
	output    string
	formats   []string
	threshold float64
	maxTicks  int
	gravity   bool
	scale     float64
	labels    bool
}

func (c *CLI) runLayout(ctx context.Context, input string, opts layoutOpts) error {
	s, err := c.newSimulator(input)
	if err != nil {
		return err
	}
	if opts.gravity && !s.GravityEnabled() {
		s.ToggleGravity()
	}

	prog := newProgress(c.Logger)
	ticks, converged, err := s.RunToEquilibrium(ctx, opts.threshold, opts.maxTicks)
	if err != nil {
		return fmt.Errorf("layout %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Simulated %d ticks", ticks))
	if !converged {
		c.Logger.Warn("tick limit reached before equilibrium",
			"total_velocity", s.TotalVelocity(), "threshold", opts.threshold)
	}

	snap := s.Snapshot()
	for _, format := range opts.formats {
		path := outputPath(input, opts.output, format, len(opts.formats) > 1)
		if err := writeLayout(ctx, snap, format, path, opts); err != nil {
			return err
		}
		printFile(path)
	}

	printSuccess("Layout complete")
	printStats(len(snap.Nodes), len(snap.Edges), ticks, converged)
	return nil
}

func writeLayout(ctx context.Context, snap sim.Snapshot, format, path string, opts layoutOpts) error {
	ropts := render.Options{Scale: opts.scale, Labels: opts.labels}

	switch format {
	case formatJSON:
		return graph.WriteSnapshotFile(snap.Snapshot, path)
	case formatDOT:
		return os.WriteFile(path, []byte(render.ToDOT(snap.Snapshot, ropts)), 0o644)
	case formatSVG:
		svg, err := render.RenderSVG(ctx, render.ToDOT(snap.Snapshot, ropts))
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		return os.WriteFile(path, svg, 0o644)
	case formatPNG:
		png, err := render.RenderPNG(ctx, render.ToDOT(snap.Snapshot, ropts))
		if err != nil {
			return fmt.Errorf("render png: %w", err)
		}
		return os.WriteFile(path, png, 0o644)
	default:
		return fmt.Errorf("unknown format %q (want json, dot, svg, or png)", format)
	}
}

// outputPath derives the output file name: an explicit --output wins
// for a single format and becomes a base path for several.
func outputPath(input, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout"
	}
	return base + "." + format
}

// newSimulator loads a graph file and builds a simulator with the
// CLI-level parameters and seed applied.
func (c *CLI) newSimulator(path string) (*sim.Simulator, error) {
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}

	params, err := c.loadParams()
	if err != nil {
		return nil, err
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return sim.New(g, params, sim.WithSeed(seed), sim.WithLogger(c.Logger))
}
