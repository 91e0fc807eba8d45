package server

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/metrics"
)

// DefaultSampleSize is the number of rows /api/dataset returns by default
const DefaultSampleSize = 10

var errBadRequest = errors.New("bad request")

// table generates a fresh dataset from the request's seed
func (s *Server) table(r *http.Request) (*dataset.Table, uint32, error) {
	seed := s.cfg.Seed
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid seed %q", errBadRequest, v)
		}
		seed = uint32(parsed)
	}
	t := dataset.Generate(seed)
	metrics.DatasetsGenerated.Inc()
	return t, seed, nil
}

func attributeParam(r *http.Request) (dataset.Attribute, error) {
	name := r.URL.Query().Get("attribute")
	if name == "" {
		return 0, fmt.Errorf("%w: attribute is required", errBadRequest)
	}
	return dataset.ParseAttribute(name)
}

type datasetResponse struct {
	Seed    uint32           `json:"seed"`
	Total   int              `json:"total"`
	Records []dataset.Record `json:"records"`
}

func (s *Server) getDataset(w http.ResponseWriter, r *http.Request) {
	n := DefaultSampleSize
	if v := r.URL.Query().Get("sample"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			s.fail(w, r, fmt.Errorf("%w: invalid sample size %q", errBadRequest, v))
			return
		}
		n = parsed
	}

	t, seed, err := s.table(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var records []dataset.Record
	if n == 0 {
		records = t.Records()
	} else {
		records = dataset.Sample(t, n, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	respondJSON(w, http.StatusOK, datasetResponse{Seed: seed, Total: t.Len(), Records: records})
}

func (s *Server) getCategories(w http.ResponseWriter, r *http.Request) {
	attribute, err := attributeParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	t, _, err := s.table(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	categories, err := dataset.ObservedCategories(t, attribute)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"attribute":  attribute,
		"categories": categories,
	})
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	attribute, err := attributeParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	t, _, err := s.table(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	groups, err := dataset.Summarize(t, attribute)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"attribute": attribute,
		"groups":    groups,
	})
}

type roundedComparison struct {
	MeanA      float64 `json:"mean_a"`
	MeanB      float64 `json:"mean_b"`
	Difference float64 `json:"difference"`
}

type comparisonResponse struct {
	*dataset.ComparisonResult
	Rounded roundedComparison `json:"rounded"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	attribute, err := attributeParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	groupA := strings.TrimSpace(q.Get("group_a"))
	groupB := strings.TrimSpace(q.Get("group_b"))
	if groupA == "" || groupB == "" {
		s.fail(w, r, fmt.Errorf("%w: group_a and group_b are required", errBadRequest))
		return
	}

	t, _, err := s.table(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := dataset.Compare(t, attribute, dataset.Category(groupA), dataset.Category(groupB))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	metrics.ObserveComparison(result.Significant)

	respondJSON(w, http.StatusOK, comparisonResponse{
		ComparisonResult: result,
		Rounded: roundedComparison{
			MeanA:      round2(result.MeanA),
			MeanB:      round2(result.MeanB),
			Difference: round2(result.Difference),
		},
	})
}
