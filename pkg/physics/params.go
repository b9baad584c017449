// Package physics implements the force model and the numerical
// integrator for force-directed graph layout.
//
// Each simulation tick computes a net force per node (pairwise Coulomb
// repulsion, Hooke spring attraction along edges, and optional linear
// gravity toward the origin) and then advances positions with
// semi-implicit Euler integration: velocity is updated first and the
// new velocity moves the position, which keeps stiff spring systems
// stable at practical step sizes.
//
// Both ComputeForces and Step are pure with respect to package state;
// everything they need arrives through Params and the graph they are
// handed.
package physics

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Params holds the force and integration constants. All values are
// read-only during a run except GravityEnabled, which the controller
// toggles between ticks.
//
// The defaults are tuned for legibility, not correctness: any layout
// converges under a wide range of constants, it just looks different.
type Params struct {
	// Repulsion scales the Coulomb term k/d² between every node pair.
	Repulsion float64 `toml:"repulsion"`

	// Spring scales the Hooke term k·(d - rest_length) along edges.
	Spring float64 `toml:"spring"`

	// SpringLength is the natural (rest) length of every edge spring.
	SpringLength float64 `toml:"spring_length"`

	// Gravity scales the pull toward the origin when enabled.
	Gravity float64 `toml:"gravity"`

	// GravityEnabled toggles the gravity term.
	GravityEnabled bool `toml:"gravity_enabled"`

	// Damping is the velocity retained per tick, in [0,1). Values at or
	// above 1 never dissipate energy and the layout will not settle.
	Damping float64 `toml:"damping"`

	// TimeStep is the integration step dt, in simulation time units.
	TimeStep float64 `toml:"time_step"`

	// MinDistance floors the pair distance before the repulsion term is
	// squared, bounding the force when nodes (nearly) coincide.
	MinDistance float64 `toml:"min_distance"`
}

// DefaultParams returns the historical constants of the original
// layout: repulsion 150, attraction 15, gravity 2.
func DefaultParams() Params {
	return Params{
		Repulsion:    150,
		Spring:       15,
		SpringLength: 1,
		Gravity:      2,
		Damping:      0.95,
		TimeStep:     0.01,
		MinDistance:  0.01,
	}
}

// Validate reports the first out-of-domain parameter.
func (p Params) Validate() error {
	if p.Damping < 0 || p.Damping >= 1 {
		return fmt.Errorf("physics: damping %v outside [0,1)", p.Damping)
	}
	if p.TimeStep <= 0 {
		return fmt.Errorf("physics: time step %v, want > 0", p.TimeStep)
	}
	if p.MinDistance <= 0 {
		return fmt.Errorf("physics: min distance %v, want > 0", p.MinDistance)
	}
	return nil
}

// LoadParams reads a TOML parameter file on top of the defaults, so a
// file only needs to name the constants it changes.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
