package dataset

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// SignificanceThreshold is the mean gap above which a comparison is flagged.
// It is a fixed classroom threshold, not a statistical test.
const SignificanceThreshold = 0.5

var (
	// ErrInvalidAttribute is returned for a grouping column that does not exist
	ErrInvalidAttribute = errors.New("invalid attribute")
	// ErrEmptyGroup is returned when a group value matches no rows
	ErrEmptyGroup = errors.New("empty group")
)

// ComparisonResult holds the mean RecommendedScore of two groups
type ComparisonResult struct {
	Attribute   Attribute `json:"attribute"`
	GroupA      Category  `json:"group_a"`
	GroupB      Category  `json:"group_b"`
	MeanA       float64   `json:"mean_a"`
	MeanB       float64   `json:"mean_b"`
	CountA      int       `json:"count_a"`
	CountB      int       `json:"count_b"`
	Difference  float64   `json:"difference"`
	Significant bool      `json:"significant"`
}

// Compare computes the mean RecommendedScore of groupA and groupB within
// attribute. The table is only read.
func Compare(t *Table, attribute Attribute, groupA, groupB Category) (*ComparisonResult, error) {
	col, err := t.Column(attribute)
	if err != nil {
		return nil, err
	}

	meanA, countA, err := groupMean(col, t.RecommendedScore, attribute, groupA)
	if err != nil {
		return nil, err
	}
	meanB, countB, err := groupMean(col, t.RecommendedScore, attribute, groupB)
	if err != nil {
		return nil, err
	}

	diff := math.Abs(meanA - meanB)
	return &ComparisonResult{
		Attribute:   attribute,
		GroupA:      groupA,
		GroupB:      groupB,
		MeanA:       meanA,
		MeanB:       meanB,
		CountA:      countA,
		CountB:      countB,
		Difference:  diff,
		Significant: diff > SignificanceThreshold,
	}, nil
}

// ObservedCategories returns the distinct values of an attribute's column
// in order of first appearance.
func ObservedCategories(t *Table, attribute Attribute) ([]Category, error) {
	col, err := t.Column(attribute)
	if err != nil {
		return nil, err
	}
	seen := make(map[Category]bool)
	var out []Category
	for _, c := range col {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

func groupMean(col []Category, scores []float64, attribute Attribute, group Category) (float64, int, error) {
	values := selectScores(col, scores, group)
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("%w: no %s rows with value %q", ErrEmptyGroup, attribute, group)
	}
	return stat.Mean(values, nil), len(values), nil
}

func selectScores(col []Category, scores []float64, group Category) []float64 {
	var values []float64
	for i, c := range col {
		if c == group {
			values = append(values, scores[i])
		}
	}
	return values
}
