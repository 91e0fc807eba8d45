package dataset

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BoxStats is the five-number summary drawn by a box plot
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// GroupSummary describes the scores of one category
type GroupSummary struct {
	Category        Category `json:"category"`
	Count           int      `json:"count"`
	MeanRecommended float64  `json:"mean_recommended"`
	MeanActual      float64  `json:"mean_actual"`
	Recommended     BoxStats `json:"recommended"`
}

// Gap is how far the recommended mean sits below the actual mean
func (g GroupSummary) Gap() float64 {
	return g.MeanActual - g.MeanRecommended
}

// Summarize returns one summary per category of attribute that occurs in
// the table, in declaration order.
func Summarize(t *Table, attribute Attribute) ([]GroupSummary, error) {
	col, err := t.Column(attribute)
	if err != nil {
		return nil, err
	}

	var out []GroupSummary
	for _, c := range Categories(attribute) {
		rec := selectScores(col, t.RecommendedScore, c)
		if len(rec) == 0 {
			continue
		}
		act := selectScores(col, t.ActualScore, c)
		out = append(out, GroupSummary{
			Category:        c,
			Count:           len(rec),
			MeanRecommended: stat.Mean(rec, nil),
			MeanActual:      stat.Mean(act, nil),
			Recommended:     boxStats(rec),
		})
	}
	return out, nil
}

// values is modified
func boxStats(values []float64) BoxStats {
	sort.Float64s(values)
	return BoxStats{
		Min:    values[0],
		Q1:     stat.Quantile(0.25, stat.LinInterp, values, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, values, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, values, nil),
		Max:    values[len(values)-1],
	}
}

// Sample returns n distinct records in random order. n is clamped to the
// table size; a negative n returns no records.
func Sample(t *Table, n int, r *rand.Rand) []Record {
	if n <= 0 {
		return nil
	}
	if n > t.Len() {
		n = t.Len()
	}
	perm := r.Perm(t.Len())
	out := make([]Record, n)
	for i := range out {
		out[i] = t.Row(perm[i])
	}
	return out
}
