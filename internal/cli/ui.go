package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the status output and the watch view.
var (
	colorCyan   = lipgloss.Color("36")  // primary accents
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings / paused state
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	stylePaused  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)

	styleNode = lipgloss.NewStyle().Foreground(colorCyan)
	styleEdge = lipgloss.NewStyle().Foreground(colorDim)
)

// printSuccess prints a green check line.
func printSuccess(msg string) {
	fmt.Printf("%s %s\n", styleSuccess.Render("✓"), msg)
}

// printFile prints an output file path.
func printFile(path string) {
	fmt.Printf("  %s %s\n", styleLabel.Render("wrote"), styleValue.Render(path))
}

// printStats prints the node/edge/tick summary after a layout run.
func printStats(nodes, edges, ticks int, converged bool) {
	state := styleSuccess.Render("settled")
	if !converged {
		state = stylePaused.Render("tick limit reached")
	}
	fmt.Printf("  %s %s nodes, %s edges, %s ticks, %s\n",
		styleLabel.Render("graph:"),
		styleValue.Render(fmt.Sprint(nodes)),
		styleValue.Render(fmt.Sprint(edges)),
		styleValue.Render(fmt.Sprint(ticks)),
		state)
}
