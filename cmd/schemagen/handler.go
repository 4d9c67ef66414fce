package main

import (
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spetersoncode/schemagen/model"
	"github.com/spetersoncode/schemagen/workflow"
)

// Server exposes a workflow over HTTP.
type Server struct {
	wf     *workflow.Workflow
	logger *slog.Logger
}

// NewServer creates a server for wf.
func NewServer(wf *workflow.Workflow, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{wf: wf, logger: logger}
}

// Routes returns the HTTP handler with every endpoint registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate-schema", s.handleGenerateSchema)
	mux.HandleFunc("POST /check-integration", s.handleCheckIntegration)
	mux.HandleFunc("GET /integration-steps", s.handleIntegrationSteps)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /health", healthHandler)
	return s.logRequests(corsMiddleware(mux))
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Action string `json:"action"`
}

type checkRequest struct {
	Step string `json:"step"`
}

func (s *Server) handleGenerateSchema(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}
	if req.Action == "" {
		req.Action = workflow.ActionGenerate
	}

	res := s.wf.Run(r.Context(), req.Action, req.Prompt)

	switch res.Status {
	case workflow.StatusError:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    res.Message,
			"response": res.RawContent,
		})
	case workflow.StatusWarning:
		writeJSON(w, http.StatusOK, map[string]any{
			"schema":          res.Schema,
			"warning":         res.Message,
			"available_steps": res.AvailableSteps,
		})
	case workflow.StatusNeedsClarification:
		writeJSON(w, http.StatusOK, map[string]any{
			"schema":         res.Schema,
			"missing_fields": res.MissingFields,
			"message":        res.Message,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"schema":            res.Schema,
			"success":           true,
			"integration_steps": nonNil(res.IntegrationSteps),
		})
	}
}

func (s *Server) handleCheckIntegration(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if req.Step == "" {
		writeError(w, http.StatusBadRequest, "Integration step is required")
		return
	}

	if s.wf.HasIntegrationStep(req.Step) {
		writeJSON(w, http.StatusOK, map[string]any{"exists": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exists":          false,
		"available_steps": s.wf.IntegrationSteps(),
	})
}

func (s *Server) handleIntegrationSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"integration_steps": s.wf.IntegrationSteps(),
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"available_models": model.IDs(),
		"selected_model":   s.wf.Model(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.wf.Reset()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// decodeJSON reports whether r carries a JSON content type and a body that
// decodes into v.
func decodeJSON(r *http.Request, v any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return false
	}
	return json.NewDecoder(r.Body).Decode(v) == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs each request with a request-scoped id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := s.logger.With("request_id", uuid.NewString())
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for cross-origin frontend requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
