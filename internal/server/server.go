// Package server exposes the bias lab over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

// Config holds the server settings
type Config struct {
	Addr            string
	Seed            uint32
	ShutdownTimeout time.Duration
}

// Server serves the API. Each dataset request generates its own table, so
// handlers share no mutable state besides the plan store.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	store   lessonplan.Store
	catalog *content.Catalog
	builder *lessonplan.Builder
	router  *mux.Router
}

// New creates a server and registers its routes
func New(cfg Config, logger *slog.Logger, store lessonplan.Store, catalog *content.Catalog, builder *lessonplan.Builder) *Server {
	if builder == nil {
		builder = lessonplan.NewBuilder()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		catalog: catalog,
		builder: builder,
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests, s.observeRequests)
	// mux skips Use middleware when no route matches
	s.router.NotFoundHandler = s.logRequests(s.observeRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})))
	s.router.MethodNotAllowedHandler = s.logRequests(s.observeRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})))

	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/examples", s.listExamples).Methods(http.MethodGet)
	api.HandleFunc("/examples/{category}", s.getExample).Methods(http.MethodGet)
	api.HandleFunc("/reports/random", s.randomReport).Methods(http.MethodGet)
	api.HandleFunc("/concepts", s.concepts).Methods(http.MethodGet)
	api.HandleFunc("/resources", s.resources).Methods(http.MethodGet)

	api.HandleFunc("/dataset", s.getDataset).Methods(http.MethodGet)
	api.HandleFunc("/dataset/categories", s.getCategories).Methods(http.MethodGet)
	api.HandleFunc("/dataset/summary", s.getSummary).Methods(http.MethodGet)
	api.HandleFunc("/compare", s.compare).Methods(http.MethodGet)

	plans := api.PathPrefix("/plans").Subrouter()
	plans.Use(withSession)
	plans.HandleFunc("", s.createPlan).Methods(http.MethodPost)
	plans.HandleFunc("", s.listPlans).Methods(http.MethodGet)
	plans.HandleFunc("/{id:[0-9]+}", s.getPlan).Methods(http.MethodGet)
	plans.HandleFunc("/{id:[0-9]+}", s.deletePlan).Methods(http.MethodDelete)
}

// ServeHTTP makes the server usable as an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
