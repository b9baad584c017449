package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchCommand creates the watch command for the live terminal view.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		fps     int
		gravity bool
	)

	cmd := &cobra.Command{
		Use:   "watch [graph.json]",
		Short: "Watch the simulation settle in an interactive terminal view",
		Long: `Watch the simulation settle in an interactive terminal view.

Keys:
  p        pause / resume
  r        restart with fresh random positions
  g        toggle gravity
  k / j    zoom in / out
  q, esc   quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(args[0], fps, gravity)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "simulation ticks (and frames) per second")
	cmd.Flags().BoolVarP(&gravity, "gravity", "g", false, "start with gravity enabled")

	return cmd
}

func (c *CLI) runWatch(input string, fps int, gravity bool) error {
	if fps <= 0 {
		return fmt.Errorf("fps %d, want > 0", fps)
	}

	s, err := c.newSimulator(input)
	if err != nil {
		return err
	}
	if gravity && !s.GravityEnabled() {
		s.ToggleGravity()
	}

	m := newWatchModel(s, time.Second/time.Duration(fps))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
