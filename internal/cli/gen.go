package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/esonju/forcegraph/pkg/graph"
)

// genCommand creates the gen command for producing graph files.
func (c *CLI) genCommand() *cobra.Command {
	var (
		nodes  int
		extra  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen [shape]",
		Short: "Generate a graph file for a standard topology",
		Long: fmt.Sprintf(`Generate a graph file for a standard topology.

Available shapes: %s.

The random shape connects all nodes in a path and adds --extra random
chords (default: nodes/3), so the result is always connected.`, strings.Join(graph.Shapes(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: graph.Shapes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGen(args[0], nodes, extra, output)
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 20, "number of nodes")
	cmd.Flags().IntVar(&extra, "extra", 0, "extra random chords (random shape only)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <shape>-<n>.json)")

	return cmd
}

func (c *CLI) runGen(shape string, nodes, extra int, output string) error {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f, err := graph.Generate(shape, nodes, extra, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	if output == "" {
		output = f.Name + ".json"
	}
	if err := graph.WriteGraphFile(f, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess(fmt.Sprintf("Generated %s graph (%d nodes, %d edges)", shape, nodes, len(f.Edges)))
	printFile(output)
	return nil
}
