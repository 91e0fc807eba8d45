package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

// TextFormatter formats output as terminal tables
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

func (f *TextFormatter) table(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(f.writer)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	return t
}

// FormatRecords writes student records as a table
func (f *TextFormatter) FormatRecords(records []dataset.Record) error {
	t := f.table(recordHeader)
	for _, r := range records {
		t.Append(recordRow(r))
	}
	t.Render()
	return nil
}

// FormatComparison writes both group means and flags a significant gap
func (f *TextFormatter) FormatComparison(r *dataset.ComparisonResult) error {
	_, _ = color.New(color.FgCyan).Fprintf(f.writer, "Comparing %s: %s vs %s\n", r.Attribute, r.GroupA, r.GroupB)
	_, _ = fmt.Fprintf(f.writer, "Mean %s: %s (%d students)\n", r.GroupA, score(r.MeanA), r.CountA)
	_, _ = fmt.Fprintf(f.writer, "Mean %s: %s (%d students)\n", r.GroupB, score(r.MeanB), r.CountB)

	if r.Significant {
		_, _ = color.New(color.FgYellow, color.Bold).Fprintf(f.writer, "Significant difference found: %s points\n", score(r.Difference))
		_, _ = fmt.Fprintln(f.writer, "This may indicate a possible bias in the system!")
		return nil
	}
	_, _ = fmt.Fprintf(f.writer, "Difference: %s points (threshold %.1f)\n", score(r.Difference), dataset.SignificanceThreshold)
	return nil
}

// FormatSummary writes one row per group
func (f *TextFormatter) FormatSummary(attribute dataset.Attribute, groups []dataset.GroupSummary) error {
	_, _ = color.New(color.FgCyan).Fprintf(f.writer, "Recommended scores by %s\n", attribute)
	t := f.table(summaryHeader)
	for _, g := range groups {
		t.Append(summaryRow(g))
	}
	t.Render()
	return nil
}

// FormatExamples writes each bias example as a block
func (f *TextFormatter) FormatExamples(examples []content.Example) error {
	for i, e := range examples {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between examples
		}
		_, _ = color.New(color.FgCyan, color.Bold).Fprintf(f.writer, "%s bias\n", e.Category)
		_, _ = fmt.Fprintf(f.writer, "  Example:    %s\n", e.Example)
		_, _ = fmt.Fprintf(f.writer, "  Impact:     %s\n", e.Impact)
		_, _ = fmt.Fprintf(f.writer, "  Activity:   %s\n", e.Activity)
		_, _ = fmt.Fprintf(f.writer, "  Mitigation: %s\n", e.Mitigation)
	}
	return nil
}

// FormatPlans writes a one-line summary per plan
func (f *TextFormatter) FormatPlans(plans []lessonplan.Plan) error {
	if len(plans) == 0 {
		_, _ = fmt.Fprintln(f.writer, "No saved plans yet. Create your first plan!")
		return nil
	}
	t := f.table([]string{"ID", "Theme", "Level", "Duration", "Created"})
	for _, p := range plans {
		t.Append([]string{
			fmt.Sprintf("%d", p.ID),
			p.Theme,
			p.Level,
			fmt.Sprintf("%d min", p.DurationMinutes),
			p.CreatedAt.Format(createdLayout),
		})
	}
	t.Render()
	return nil
}

// FormatPlan writes the plan heading and its content
func (f *TextFormatter) FormatPlan(p lessonplan.Plan) error {
	_, _ = color.New(color.FgCyan, color.Bold).Fprintf(f.writer, "PLAN %d: %s (%s)\n\n", p.ID, p.Theme, p.Level)
	_, err := io.WriteString(f.writer, p.Content)
	return err
}
