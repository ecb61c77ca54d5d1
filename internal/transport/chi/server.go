// Package chi exposes the tool API over HTTP as an alternative to the
// stdio protocol. Same registry, same dispatch; JSON bodies instead of
// protocol frames.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/metrics"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/tool"
	healthuc "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/health"
)

// maxBodySize bounds a tool-call request body.
const maxBodySize = 1 << 20

// Server routes tool and health endpoints.
type Server struct {
	registry *tool.Registry
	health   *healthuc.Service
	logger   *zap.Logger
}

// NewServer creates an HTTP tool server.
func NewServer(registry *tool.Registry, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{registry: registry, health: health, logger: logger}
}

// Routes builds the router with metrics middleware attached.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/v1/tools", s.listTools)
	r.Post("/v1/tools/{name}", s.callTool)
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// listTools handles GET /v1/tools.
func (s *Server) listTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": s.registry.Declarations()})
}

// callTool handles POST /v1/tools/{name}. The body is passed to the tool
// as its raw argument object.
func (s *Server) callTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "unreadable request body")
		return
	}

	text, err := s.registry.Call(r.Context(), name, body)
	if err != nil {
		s.handleToolError(w, name, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"tool": name, "text": text})
}

// healthz handles GET /healthz.
func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{"status": report.Status, "checks": report.Checks})
}

// handleToolError maps domain sentinels to HTTP statuses.
func (s *Server) handleToolError(w http.ResponseWriter, name string, err error) {
	s.logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrUnknownTool):
		writeError(w, http.StatusNotFound, "unknown_tool", err.Error())
	case errors.Is(err, domain.ErrEmptySearchTerm),
		errors.Is(err, domain.ErrUnknownScope),
		errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrStoreAccess):
		writeError(w, http.StatusInternalServerError, "store_access", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}
