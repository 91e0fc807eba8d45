// Package formatter renders datasets, comparisons, catalog entries and
// lesson plans for the terminal (text) or as markdown.
package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

const (
	formatMarkdown = "markdown"
	formatText     = "text"
)

// Formatter writes one kind of output
type Formatter interface {
	FormatRecords(records []dataset.Record) error
	FormatComparison(r *dataset.ComparisonResult) error
	FormatSummary(attribute dataset.Attribute, groups []dataset.GroupSummary) error
	FormatExamples(examples []content.Example) error
	FormatPlans(plans []lessonplan.Plan) error
	FormatPlan(p lessonplan.Plan) error
}

// New returns the formatter for format ("text" or "markdown")
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case formatText:
		return NewTextFormatter(w), nil
	case formatMarkdown:
		return NewMarkdownFormatter(w), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}
}

func score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func recordRow(r dataset.Record) []string {
	return []string{
		string(r.Gender),
		string(r.Race),
		string(r.SocioeconomicLevel),
		score(r.RecommendedScore),
		score(r.ActualScore),
	}
}

var recordHeader = []string{"Gender", "Race", "Socioeconomic Level", "Recommended Score", "Actual Score"}

var summaryHeader = []string{"Group", "Count", "Mean Recommended", "Mean Actual", "Gap", "Min", "Q1", "Median", "Q3", "Max"}

func summaryRow(g dataset.GroupSummary) []string {
	return []string{
		string(g.Category),
		fmt.Sprintf("%d", g.Count),
		score(g.MeanRecommended),
		score(g.MeanActual),
		score(g.Gap()),
		score(g.Recommended.Min),
		score(g.Recommended.Q1),
		score(g.Recommended.Median),
		score(g.Recommended.Q3),
		score(g.Recommended.Max),
	}
}

const createdLayout = "2006-01-02 15:04"
