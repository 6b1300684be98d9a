package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/diagramd/diagramd/pkg/graph"
	"github.com/diagramd/diagramd/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	return NewServer(runner, log.New(io.Discard))
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestLayoutEndpoint(t *testing.T) {
	req := layoutRequest{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graph.Edge{{Source: "a", Target: "b"}},
		Options: pipeline.Options{
			Algorithm: "layered",
			Direction: "top-bottom",
		},
	}

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/layout", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var resp layoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(resp.Nodes))
	}
	if len(resp.Edges) != 1 {
		t.Errorf("len(Edges) = %d, want 1", len(resp.Edges))
	}
	// Top-bottom layered ranking puts the source above the target.
	if resp.Nodes[0].Y >= resp.Nodes[1].Y {
		t.Errorf("Y(a)=%v not above Y(b)=%v", resp.Nodes[0].Y, resp.Nodes[1].Y)
	}
}

func TestLayoutEndpointUnknownAlgorithm(t *testing.T) {
	// Unknown identifiers resolve to the fallback; the request still succeeds.
	req := layoutRequest{
		Nodes:   []graph.Node{{ID: "a"}},
		Options: pipeline.Options{Algorithm: "sunburst"},
	}
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/layout", req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}
}

func TestLayoutEndpointMalformedBody(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httpReq)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", resp.Error.Code)
	}
}

func TestLayoutEndpointDanglingEdge(t *testing.T) {
	req := layoutRequest{
		Nodes: []graph.Node{{ID: "a"}},
		Edges: []graph.Edge{{Source: "a", Target: "ghost"}},
	}
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/layout", req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", rec.Code, rec.Body)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error.Code != "INVALID_GRAPH" {
		t.Errorf("error code = %q, want INVALID_GRAPH", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "ghost") {
		t.Errorf("error message %q does not name the missing node", resp.Error.Message)
	}
}

func TestAutoLayoutEndpoint(t *testing.T) {
	req := autoLayoutRequest{
		Nodes:    []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Category: "architecture",
	}
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/layout/auto", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var resp layoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Nodes) != 3 {
		t.Errorf("len(Nodes) = %d, want 3", len(resp.Nodes))
	}
}

func TestRequestIDAssigned(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
		t.Errorf("X-Request-ID = %q, want caller-supplied-id", got)
	}
}
