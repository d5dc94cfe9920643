package control_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netsim-dev/netsim/internal/control"
	"github.com/netsim-dev/netsim/internal/events"
	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/simstate"
)

func newTestServer(t *testing.T) (*control.Server, *httptest.Server) {
	t.Helper()
	store := graph.New()
	sim := simstate.New(store, 1)
	bus := events.NewBus(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := control.New(":0", store, sim, bus, logger)
	return srv, httptest.NewServer(srv.Handler())
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestServer_AddNodeAndConnect(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "A", "kind": "host", "address": "10.0.0.1"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "B", "kind": "host", "address": "10.0.0.2"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/links/", map[string]any{"a": "A", "b": "B"})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, ts, http.MethodPost, "/api/traversal/shortest-hops", map[string]any{"src": "A", "dst": "B"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if found, _ := body["found"].(bool); !found {
		t.Fatalf("expected a path to be found: %+v", body)
	}
}

func TestServer_AddNodeConflictReturns409(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "A", "kind": "host", "address": "10.0.0.1"})
	resp, _ := doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "A", "kind": "host", "address": "10.0.0.1"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestServer_GetMissingNodeReturns404(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodGet, "/api/nodes/ghost", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_UnknownTraversalAlgorithmReturns404(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodPost, "/api/traversal/not-a-real-algorithm", map[string]any{"src": "A", "dst": "B"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_SnapshotExportImportRoundTrip(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "A", "kind": "host", "address": "10.0.0.1"})
	doJSON(t, ts, http.MethodPost, "/api/nodes/", map[string]any{"name": "B", "kind": "host", "address": "10.0.0.2"})
	doJSON(t, ts, http.MethodPost, "/api/links/", map[string]any{"a": "A", "b": "B"})

	resp, err := http.Get(ts.URL + "/api/snapshot/")
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/snapshot/", bytes.NewReader(data))
	putResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer putResp.Body.Close()
	if putResp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", putResp.StatusCode)
	}
}
