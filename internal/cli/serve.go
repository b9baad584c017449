package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/esonju/forcegraph/pkg/sim"
)

// serveCommand creates the serve command exposing a running
// simulation over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		fps     int
		gravity bool
	)

	cmd := &cobra.Command{
		Use:   "serve [graph.json]",
		Short: "Run the simulation and expose it over a read-only HTTP API",
		Long: `Run the simulation and expose it over a read-only HTTP API.

Endpoints:
  GET  /healthz       liveness probe
  GET  /api/graph     current layout snapshot (positions, edges, view state)
  POST /api/pause     toggle pause
  POST /api/restart   rescatter the layout
  POST /api/gravity   toggle gravity

External renderers poll /api/graph between ticks; the API never hands
out mutable simulation state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, fps, gravity)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8087", "listen address")
	cmd.Flags().IntVar(&fps, "fps", 30, "simulation ticks per second")
	cmd.Flags().BoolVarP(&gravity, "gravity", "g", false, "start with gravity enabled")

	return cmd
}

// Simulation commands accepted over the API. Each maps to one
// idempotent controller call; unknown commands are rejected before
// they reach the loop.
const (
	cmdPause   = "pause"
	cmdRestart = "restart"
	cmdGravity = "gravity"
)

// simServer publishes snapshots from the simulation loop to HTTP
// handlers. The Simulator itself is confined to the loop goroutine;
// handlers see only copies guarded by mu.
type simServer struct {
	cli  *CLI
	cmds chan string

	mu   sync.RWMutex
	snap sim.Snapshot
}

func (c *CLI) runServe(ctx context.Context, input, addr string, fps int, gravity bool) error {
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

	srv := &simServer{cli: c, cmds: make(chan string, 16)}
	srv.publish(s.Snapshot())

	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		srv.loop(loopCtx, s, time.Second/time.Duration(fps))
	}()

	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving simulation", "addr", addr, "fps", fps)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			c.Logger.Warn("shutdown", "err", err)
		}
		stopLoop()
		wg.Wait()
		return ctx.Err()
	case err := <-errCh:
		stopLoop()
		wg.Wait()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// loop owns the Simulator: it ticks at the frame rate, applies queued
// commands between ticks, and publishes a snapshot after every change.
func (s *simServer) loop(ctx context.Context, simulator *sim.Simulator, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-s.cmds:
			switch cmd {
			case cmdPause:
				simulator.TogglePause()
			case cmdRestart:
				simulator.Restart()
			case cmdGravity:
				simulator.ToggleGravity()
			}
			s.publish(simulator.Snapshot())
		case <-ticker.C:
			if simulator.Tick() {
				s.publish(simulator.Snapshot())
			}
		}
	}
}

func (s *simServer) publish(snap sim.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *simServer) snapshot() sim.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *simServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/graph", s.handleGraph)
	r.Post("/api/pause", s.handleCommand(cmdPause))
	r.Post("/api/restart", s.handleCommand(cmdRestart))
	r.Post("/api/gravity", s.handleCommand(cmdGravity))

	return r
}

func (s *simServer) handleGraph(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
		s.cli.Logger.Warn("encode snapshot", "err", err)
	}
}

func (s *simServer) handleCommand(cmd string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		select {
		case s.cmds <- cmd:
			w.WriteHeader(http.StatusAccepted)
		default:
			// Command queue full; the client can simply retry.
			http.Error(w, "busy", http.StatusServiceUnavailable)
		}
	}
}
