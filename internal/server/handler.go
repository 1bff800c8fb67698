package server

import (
	"encoding/json"
	"net/http"
	"slices"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/transform"
)

// maxBodyBytes bounds POST /api/transform request bodies
const maxBodyBytes = 1 << 20

// TransformRequest is the body of POST /api/transform
type TransformRequest struct {
	ID          string `json:"id"`
	Input       string `json:"input"`
	Pattern     string `json:"pattern,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// TransformResponse is the answer of POST /api/transform
type TransformResponse struct {
	ID     transform.ID `json:"id"`
	Output string       `json:"output"`
}

// GroupInfo describes one catalog group
type GroupInfo struct {
	ID    transform.Group `json:"id"`
	Title string          `json:"title"`
}

// TransformsResponse is the answer of GET /api/transforms and of the
// websocket "list" message
type TransformsResponse struct {
	Groups     []GroupInfo       `json:"groups"`
	Transforms []transform.Entry `json:"transforms"`
	Total      int               `json:"total"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleTransforms(w http.ResponseWriter, r *http.Request) {
	s.allowOrigin(w, r)

	group := transform.Group(r.URL.Query().Get("group"))
	if group != "" && !slices.Contains(s.catalog.Groups(), group) {
		s.writeError(w, mdwerror.Newf("unknown group: %s", group).WithCode(mdwerror.CodeInvalidInput))
		return
	}
	s.writeJSON(w, http.StatusOK, listingOf(s.catalog, group))
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	s.allowOrigin(w, r)

	var req TransformRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, mdwerror.Wrap(err, "invalid JSON").WithCode(mdwerror.CodeInvalidInput))
		return
	}

	id, err := s.catalog.ParseID(req.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.catalog.Apply(id, req.Input, transform.Args{Pattern: req.Pattern, Replacement: req.Replacement})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, TransformResponse{ID: id, Output: out})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	s.allowOrigin(w, r)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// allowOrigin echoes an allowed Origin back for browser clients
func (s *Server) allowOrigin(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin != "" && s.originAllowed(origin, r.Host) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := mdwerror.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.LogError(err)
	}
	s.writeJSON(w, status, errorPayload(err))
}

func errorPayload(err error) ErrorResponse {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		code = mdwerror.CodeInternal
	}
	return ErrorResponse{Code: code.String(), Message: err.Error()}
}
