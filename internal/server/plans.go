package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/tordrt/biaslab/internal/lessonplan"
	"github.com/tordrt/biaslab/internal/metrics"
)

const maxPlanBody = 1 << 20

func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var req lessonplan.Request
	dec := json.NewDecoder(io.LimitReader(r.Body, maxPlanBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, fmt.Errorf("%w: invalid request body: %v", errBadRequest, err))
		return
	}

	plan, err := s.builder.Build(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	session := sessionFrom(r.Context())
	saved, err := s.store.Save(r.Context(), session, plan)
	if err != nil {
		s.fail(w, r, fmt.Errorf("failed to save plan: %w", err))
		return
	}
	metrics.LessonPlansSaved.Inc()
	s.logger.Debug("lesson plan saved", "session", session, "id", saved.ID)

	w.Header().Set("Location", fmt.Sprintf("/api/plans/%d", saved.ID))
	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.store.List(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		s.fail(w, r, fmt.Errorf("failed to list plans: %w", err))
		return
	}
	respondJSON(w, http.StatusOK, plans)
}

func planID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid plan id", errBadRequest)
	}
	return id, nil
}

func (s *Server) getPlan(w http.ResponseWriter, r *http.Request) {
	id, err := planID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	plan, err := s.store.Get(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/markdown") {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="plan-%03d.md"`, plan.ID))
		_, _ = io.WriteString(w, plan.Content)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (s *Server) deletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := planID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), sessionFrom(r.Context()), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
