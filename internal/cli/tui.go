package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esonju/forcegraph/pkg/sim"
)

// frameMsg drives one simulation tick per rendered frame.
type frameMsg time.Time

// Cell kinds on the canvas, in draw order: nodes overwrite edges.
const (
	cellEmpty = iota
	cellEdge
	cellNode
)

// watchModel is the bubbletea model for the live simulation view. The
// simulator is only touched from Update, which bubbletea runs on a
// single goroutine, so the one-writer contract holds.
type watchModel struct {
	sim      *sim.Simulator
	interval time.Duration
	width    int
	height   int
}

// newWatchModel creates the watch view ticking at the given interval.
func newWatchModel(s *sim.Simulator, interval time.Duration) watchModel {
	return watchModel{sim: s, interval: interval, width: 80, height: 24}
}

func (m watchModel) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return m.frame()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.sim.Tick()
		return m, m.frame()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "p":
			m.sim.TogglePause()
		case "r":
			m.sim.Restart()
		case "g":
			m.sim.ToggleGravity()
		case "k":
			m.sim.SetZoom(sim.ZoomInStep)
		case "j":
			m.sim.SetZoom(sim.ZoomOutStep)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m watchModel) View() string {
	snap := m.sim.Snapshot()

	canvasH := m.height - 2 // status + help line
	if canvasH < 3 || m.width < 10 {
		return "window too small"
	}

	// Kind grid; nodes drawn last so they sit on top of edges.
	grid := make([][]int, canvasH)
	for y := range grid {
		grid[y] = make([]int, m.width)
	}

	// Terminal cells are roughly twice as tall as wide; halving the
	// vertical scale keeps the layout visually isotropic.
	cx, cy := float64(m.width)/2, float64(canvasH)/2
	toCell := func(x, y float64) (int, int) {
		return int(cx + x*snap.Zoom/10), int(cy + y*snap.Zoom/20)
	}

	plot := func(px, py, kind int) {
		if px >= 0 && px < m.width && py >= 0 && py < canvasH && grid[py][px] < kind {
			grid[py][px] = kind
		}
	}

	for _, e := range snap.Edges {
		a, b := snap.Nodes[e.A], snap.Nodes[e.B]
		x0, y0 := toCell(a.X, a.Y)
		x1, y1 := toCell(b.X, b.Y)
		steps := max(abs(x1-x0), abs(y1-y0))
		for i := 0; i <= steps; i++ {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			plot(x0+int(t*float64(x1-x0)), y0+int(t*float64(y1-y0)), cellEdge)
		}
	}
	for _, n := range snap.Nodes {
		px, py := toCell(n.X, n.Y)
		plot(px, py, cellNode)
	}

	var b strings.Builder
	for _, row := range grid {
		x := 0
		for x < len(row) {
			// Batch runs of equal cell kind into one styled write.
			kind := row[x]
			start := x
			for x < len(row) && row[x] == kind {
				x++
			}
			run := x - start
			switch kind {
			case cellNode:
				b.WriteString(styleNode.Render(strings.Repeat("●", run)))
			case cellEdge:
				b.WriteString(styleEdge.Render(strings.Repeat("·", run)))
			default:
				b.WriteString(strings.Repeat(" ", run))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine(snap))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("p pause  r restart  g gravity  k/j zoom  q quit"))
	return b.String()
}

func (m watchModel) statusLine(snap sim.Snapshot) string {
	state := styleSuccess.Render("running")
	if snap.Paused {
		state = stylePaused.Render("paused")
	}
	gravity := "off"
	if snap.Gravity {
		gravity = "on"
	}

	name := snap.Name
	if name == "" {
		name = appName
	}

	return fmt.Sprintf("%s  %s  %s %s  %s %.1f  %s %d  %s %.3f",
		styleTitle.Render(name),
		state,
		styleLabel.Render("gravity"), styleValue.Render(gravity),
		styleLabel.Render("zoom"), snap.Zoom,
		styleLabel.Render("tick"), snap.Tick,
		styleLabel.Render("velocity"), snap.TotalVelocity)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
