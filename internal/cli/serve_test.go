package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/esonju/forcegraph/pkg/graph"
	"github.com/esonju/forcegraph/pkg/physics"
	"github.com/esonju/forcegraph/pkg/sim"
)

func newTestServer(t *testing.T) *simServer {
	t.Helper()

	g, err := graph.New(3, []graph.Edge{{A: 0, B: 1}, {A: 1, B: 2}})
	if err != nil {
		t.Fatalf("graph.New error: %v", err)
	}
	s, err := sim.New(g, physics.DefaultParams(), sim.WithSeed(7))
	if err != nil {
		t.Fatalf("sim.New error: %v", err)
	}

	srv := &simServer{cli: New(io.Discard, LogInfo), cmds: make(chan string, 1)}
	srv.publish(s.Snapshot())
	return srv
}

func TestServeHealthz(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestServeGraphSnapshot(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/graph")
	if err != nil {
		t.Fatalf("GET /api/graph error: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var snap sim.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Nodes) != 3 {
		t.Errorf("snapshot nodes = %d, want 3", len(snap.Nodes))
	}
	if len(snap.Edges) != 2 {
		t.Errorf("snapshot edges = %d, want 2", len(snap.Edges))
	}
}

func TestServeCommandQueue(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/pause", "", nil)
	if err != nil {
		t.Fatalf("POST /api/pause error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}
	if got := <-srv.cmds; got != cmdPause {
		t.Errorf("queued command = %q, want %q", got, cmdPause)
	}

	// Queue capacity is 1 in this test; with no loop draining it the
	// next two posts fill the queue and then report busy.
	for i, want := range []int{http.StatusAccepted, http.StatusServiceUnavailable} {
		resp, err := http.Post(ts.URL+"/api/restart", "", nil)
		if err != nil {
			t.Fatalf("POST /api/restart #%d error: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("POST #%d status = %d, want %d", i, resp.StatusCode, want)
		}
	}
}
