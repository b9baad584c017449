// Package sim drives the force-directed layout simulation: it owns the
// graph state and force parameters, advances them tick by tick, and
// exposes the pause/resume/restart controls an interactive frontend
// maps its commands onto.
//
// A Simulator is single-threaded by contract: Tick and every control
// method must be called from one goroutine, and renderers read
// Snapshot values (copies) between ticks.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/esonju/forcegraph/pkg/graph"
	"github.com/esonju/forcegraph/pkg/physics"
)

// ErrStopped is returned when a batch run is cancelled before the
// layout settles.
var ErrStopped = errors.New("sim: stopped before equilibrium")

// State is the controller's run state.
type State int

const (
	// Running advances the simulation on every Tick.
	Running State = iota
	// Paused makes Tick a no-op; controls still work.
	Paused
)

// String returns the lowercase state name.
func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Zoom step applied per zoom command, matching the original's
// keyboard increments.
const (
	ZoomInStep  = 0.05
	ZoomOutStep = -0.05

	defaultZoom = 25.0
)

// Snapshot extends the graph snapshot with the view and controller
// state a renderer needs.
type Snapshot struct {
	graph.Snapshot
	Zoom          float64 `json:"zoom"`
	Paused        bool    `json:"paused"`
	Gravity       bool    `json:"gravity"`
	Tick          uint64  `json:"tick"`
	TotalVelocity float64 `json:"total_velocity"`
}

// Simulator owns one simulation: graph, parameters, RNG stream, and
// run state.
type Simulator struct {
	g      *graph.Graph
	params physics.Params
	bounds graph.Bounds
	rng    *rand.Rand
	logger *log.Logger
	state  State
	zoom   float64
	ticks  uint64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed fixes the RNG seed, making initial placement and every
// subsequent restart deterministic.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithBounds sets the region nodes are scattered into.
func WithBounds(b graph.Bounds) Option {
	return func(s *Simulator) { s.bounds = b }
}

// WithLogger sets the logger used for lifecycle and instability
// events. Without it the simulator is silent.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// New takes ownership of g, validates params, scatters the initial
// placement, and returns a Running simulator.
func New(g *graph.Graph, params physics.Params, opts ...Option) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		g:      g,
		params: params,
		bounds: graph.DefaultBounds(),
		zoom:   defaultZoom,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.g.Scatter(s.rng, s.bounds)
	s.logger.Debug("simulation initialized",
		"run_id", s.g.RunID(), "nodes", s.g.NodeCount(), "edges", s.g.EdgeCount())
	return s, nil
}

// State returns the current run state.
func (s *Simulator) State() State { return s.state }

// Pause stops ticking. No effect if already paused.
func (s *Simulator) Pause() { s.state = Paused }

// Resume continues ticking. No effect if already running.
func (s *Simulator) Resume() { s.state = Running }

// TogglePause flips between Running and Paused.
func (s *Simulator) TogglePause() {
	if s.state == Running {
		s.state = Paused
	} else {
		s.state = Running
	}
}

// Restart rescatters the same topology into fresh random positions
// with zero velocities. The run state (running or paused) is kept.
func (s *Simulator) Restart() {
	s.g.Scatter(s.rng, s.bounds)
	s.ticks = 0
	s.logger.Info("layout restarted", "run_id", s.g.RunID())
}

// ToggleGravity flips the gravity term and returns the new setting.
// Takes effect on the next force computation.
func (s *Simulator) ToggleGravity() bool {
	s.params.GravityEnabled = !s.params.GravityEnabled
	s.logger.Debug("gravity toggled", "enabled", s.params.GravityEnabled)
	return s.params.GravityEnabled
}

// GravityEnabled reports whether the gravity term is active.
func (s *Simulator) GravityEnabled() bool { return s.params.GravityEnabled }

// SetZoom scales the view factor by 1+delta. The zoom is carried for
// renderers only and has no effect on the physics.
func (s *Simulator) SetZoom(delta float64) {
	z := s.zoom * (1 + delta)
	if z > 0 {
		s.zoom = z
	}
}

// Zoom returns the current view scale.
func (s *Simulator) Zoom() float64 { return s.zoom }

// Params returns the current force parameters.
func (s *Simulator) Params() physics.Params { return s.params }

// Ticks returns the number of ticks advanced since start or restart.
func (s *Simulator) Ticks() uint64 { return s.ticks }

// TotalVelocity returns the equilibrium metric of the current state.
func (s *Simulator) TotalVelocity() float64 { return s.g.TotalVelocity() }

// Tick advances the simulation by one step and reports whether it did.
// While paused it leaves the graph untouched and returns false.
func (s *Simulator) Tick() bool {
	if s.state != Running {
		return false
	}
	s.step()
	return true
}

func (s *Simulator) step() {
	forces := physics.ComputeForces(s.g, s.params)
	if unstable := physics.Step(s.g, forces, s.params); len(unstable) > 0 {
		s.logger.Warn("non-finite integration result, velocity clamped",
			"nodes", unstable, "tick", s.ticks)
	}
	s.ticks++
}

// RunToEquilibrium advances the simulation, regardless of pause state,
// until the total velocity drops below threshold or maxTicks steps
// have run. It returns the number of ticks executed and whether the
// layout converged. Cancelling ctx stops the run with an error
// wrapping ErrStopped.
func (s *Simulator) RunToEquilibrium(ctx context.Context, threshold float64, maxTicks int) (int, bool, error) {
	for n := 0; n < maxTicks; n++ {
		select {
		case <-ctx.Done():
			return n, false, fmt.Errorf("%w: %v", ErrStopped, ctx.Err())
		default:
		}

		s.step()
		if s.g.TotalVelocity() < threshold {
			s.logger.Debug("equilibrium reached", "ticks", n+1, "total_velocity", s.g.TotalVelocity())
			return n + 1, true, nil
		}
	}
	return maxTicks, false, nil
}

// Snapshot returns a copy of the current layout plus view state for
// renderers. Safe to retain; it does not alias simulation state.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Snapshot:      s.g.Snapshot(),
		Zoom:          s.zoom,
		Paused:        s.state == Paused,
		Gravity:       s.params.GravityEnabled,
		Tick:          s.ticks,
		TotalVelocity: s.g.TotalVelocity(),
	}
}
