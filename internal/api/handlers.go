package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/diagramd/diagramd/pkg/errors"
	"github.com/diagramd/diagramd/pkg/graph"
	"github.com/diagramd/diagramd/pkg/pipeline"
)

// layoutRequest is the body of POST /v1/layout.
type layoutRequest struct {
	Nodes   []graph.Node     `json:"nodes"`
	Edges   []graph.Edge     `json:"edges"`
	Options pipeline.Options `json:"options"`
}

// autoLayoutRequest is the body of POST /v1/layout/auto.
type autoLayoutRequest struct {
	Nodes    []graph.Node `json:"nodes"`
	Edges    []graph.Edge `json:"edges"`
	Category string       `json:"category"`
}

// layoutResponse carries the relaid graph back to the canvas. Edges are the
// input edges, unchanged.
type layoutResponse struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "malformed request body: %v", err))
		return
	}

	req.Options.Logger = s.logger
	s.applySpacingDefaults(&req.Options)
	out, err := s.runner.ComputeLayout(r.Context(), graph.Graph{Nodes: req.Nodes, Edges: req.Edges}, req.Options)
	if err != nil {
		s.writeLayoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Nodes: out.Nodes, Edges: out.Edges})
}

func (s *Server) handleAutoLayout(w http.ResponseWriter, r *http.Request) {
	var req autoLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "malformed request body: %v", err))
		return
	}

	opts := pipeline.FromCategory(req.Category)
	opts.Logger = s.logger
	s.applySpacingDefaults(&opts)
	out, err := s.runner.ComputeLayout(r.Context(), graph.Graph{Nodes: req.Nodes, Edges: req.Edges}, opts)
	if err != nil {
		s.writeLayoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Nodes: out.Nodes, Edges: out.Edges})
}

// applySpacingDefaults fills omitted spacing from the server configuration.
func (s *Server) applySpacingDefaults(opts *pipeline.Options) {
	if opts.Spacing.Node == 0 {
		opts.Spacing.Node = s.spacing.Node
	}
	if opts.Spacing.Rank == 0 {
		opts.Spacing.Rank = s.spacing.Rank
	}
}

// writeLayoutError maps pipeline errors to HTTP responses. Dangling edges
// are the caller's data problem: 422 with every offending edge named.
func (s *Server) writeLayoutError(w http.ResponseWriter, err error) {
	var invalid *graph.InvalidGraphError
	if errors.As(err, &invalid) {
		s.writeError(w, http.StatusUnprocessableEntity, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "graph failed validation"))
		return
	}
	s.writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeInternal, err, "layout failed"))
}

func (s *Server) writeError(w http.ResponseWriter, status int, err *apperrors.Error) {
	msg := err.Message
	if err.Cause != nil {
		msg = err.Message + ": " + err.Cause.Error()
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(err.Code),
		Message: msg,
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
