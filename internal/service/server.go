package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"counsel/internal/logging"
	"counsel/internal/pipeline"
)

// Runner executes one scenario analysis. The pipeline satisfies it.
type Runner interface {
	Run(ctx context.Context, scenario string) (*pipeline.Aggregate, error)
}

// Server serves the case API:
//
//	POST   /v1/cases       submit a scenario, returns 202 with the job
//	GET    /v1/cases/{id}  fetch job state and result
//	DELETE /v1/cases/{id}  forget a job
//	GET    /v1/health      liveness and job count
type Server struct {
	runner   Runner
	registry *Registry
	log      *zap.Logger

	// runTimeout bounds a single background run.
	runTimeout time.Duration
}

// NewServer builds the API server around a runner.
func NewServer(runner Runner, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		runner:     runner,
		registry:   NewRegistry(),
		log:        log,
		runTimeout: 30 * time.Minute,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/cases", s.handleCases)
	mux.HandleFunc("/v1/cases/", s.handleCaseByID)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

// ListenAndServe runs the HTTP server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("service listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type submitRequest struct {
	Scenario string `json:"scenario"`
	Label    string `json:"label"`
}

func (s *Server) handleCases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Scenario) == "" {
		s.writeError(w, http.StatusBadRequest, "scenario is required")
		return
	}

	job := s.registry.Create(req.Scenario, strings.TrimSpace(req.Label))
	s.log.Info("case accepted", zap.String("job", job.ID), zap.Int("chars", len(req.Scenario)))
	logging.Get(logging.CategoryService).Info("case %s accepted", job.ID)

	go s.runJob(job.ID, req.Scenario)

	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) runJob(id, scenario string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	s.registry.markRunning(id)
	agg, err := s.runner.Run(ctx, scenario)
	s.registry.markDone(id, agg, err)

	if err != nil {
		s.log.Warn("case failed", zap.String("job", id), zap.Error(err))
		return
	}
	decision, confidence := agg.FinalDecision()
	s.log.Info("case finished",
		zap.String("job", id),
		zap.String("decision", decision),
		zap.String("confidence", confidence),
		zap.Duration("duration", agg.Duration))
}

func (s *Server) handleCaseByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/cases/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		job, ok := s.registry.Get(id)
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown case")
			return
		}
		s.writeJSON(w, http.StatusOK, job)
	case http.MethodDelete:
		if !s.registry.Delete(id) {
			s.writeError(w, http.StatusNotFound, "unknown case")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"jobs":   s.registry.Count(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
