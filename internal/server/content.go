package server

import (
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tordrt/biaslab/internal/content"
)

func (s *Server) listExamples(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Examples)
}

func (s *Server) getExample(w http.ResponseWriter, r *http.Request) {
	example, err := s.catalog.Example(mux.Vars(r)["category"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, example)
}

func (s *Server) randomReport(w http.ResponseWriter, r *http.Request) {
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	respondJSON(w, http.StatusOK, map[string]string{"report": s.catalog.RandomReport(rnd)})
}

type conceptsResponse struct {
	Sources []content.SourceGroup `json:"sources"`
	Cycle   []content.CycleStage  `json:"cycle"`
}

func (s *Server) concepts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, conceptsResponse{Sources: s.catalog.Sources, Cycle: s.catalog.Cycle})
}

func (s *Server) resources(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Resources)
}
