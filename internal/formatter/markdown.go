package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

// MarkdownFormatter formats output as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// markdownTable configures tablewriter to emit a GitHub-style pipe table
func (f *MarkdownFormatter) markdownTable(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(f.writer)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	t.SetCenterSeparator("|")
	return t
}

// FormatRecords writes student records as a markdown table
func (f *MarkdownFormatter) FormatRecords(records []dataset.Record) error {
	_, _ = fmt.Fprintln(f.writer, "## Recommended vs. Actual Scores")
	_, _ = fmt.Fprintln(f.writer)

	t := f.markdownTable(recordHeader)
	for _, r := range records {
		t.Append(recordRow(r))
	}
	t.Render()
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

// FormatComparison writes both group means and flags a significant gap
func (f *MarkdownFormatter) FormatComparison(r *dataset.ComparisonResult) error {
	_, _ = fmt.Fprintf(f.writer, "## %s: %s vs %s\n\n", r.Attribute, r.GroupA, r.GroupB)
	_, _ = fmt.Fprintf(f.writer, "- **Mean %s:** %s (%d students)\n", r.GroupA, score(r.MeanA), r.CountA)
	_, _ = fmt.Fprintf(f.writer, "- **Mean %s:** %s (%d students)\n", r.GroupB, score(r.MeanB), r.CountB)
	_, _ = fmt.Fprintf(f.writer, "- **Difference:** %s points\n\n", score(r.Difference))

	if r.Significant {
		_, _ = fmt.Fprintf(f.writer, "> **Significant difference found: %s points.** This may indicate a possible bias in the system!\n\n", score(r.Difference))
	}
	return nil
}

// FormatSummary writes one row per group
func (f *MarkdownFormatter) FormatSummary(attribute dataset.Attribute, groups []dataset.GroupSummary) error {
	_, _ = fmt.Fprintf(f.writer, "## Recommended Scores by %s\n\n", attribute)

	t := f.markdownTable(summaryHeader)
	for _, g := range groups {
		t.Append(summaryRow(g))
	}
	t.Render()
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

// FormatExamples writes one section per bias example
func (f *MarkdownFormatter) FormatExamples(examples []content.Example) error {
	_, _ = fmt.Fprintln(f.writer, "# Documented Examples of Bias in Education")
	_, _ = fmt.Fprintln(f.writer)

	for _, e := range examples {
		_, _ = fmt.Fprintf(f.writer, "## %s Bias\n\n", e.Category)
		_, _ = fmt.Fprintf(f.writer, "**Concrete example**:  \n%s\n\n", e.Example)
		_, _ = fmt.Fprintf(f.writer, "**Impact on education**:  \n%s\n\n", e.Impact)
		_, _ = fmt.Fprintf(f.writer, "**Classroom activity**:  \n- %s\n\n", e.Activity)
		_, _ = fmt.Fprintf(f.writer, "**How to mitigate**:  \n- %s\n\n", e.Mitigation)
	}
	return nil
}

// FormatPlans writes a list of saved plans
func (f *MarkdownFormatter) FormatPlans(plans []lessonplan.Plan) error {
	_, _ = fmt.Fprintln(f.writer, "# Saved Plans")
	_, _ = fmt.Fprintln(f.writer)

	if len(plans) == 0 {
		_, _ = fmt.Fprintln(f.writer, "No saved plans yet. Create your first plan!")
		return nil
	}
	for _, p := range plans {
		_, _ = fmt.Fprintf(f.writer, "- **Lesson %d:** %s (%s)", p.ID, p.Theme, p.Level)
		if len(p.Curriculum) > 0 {
			_, _ = fmt.Fprintf(f.writer, ", connects with %s", strings.Join(p.Curriculum, ", "))
		}
		_, _ = fmt.Fprintln(f.writer)
	}
	return nil
}

// FormatPlan writes the plan content, which is already markdown
func (f *MarkdownFormatter) FormatPlan(p lessonplan.Plan) error {
	_, err := io.WriteString(f.writer, p.Content)
	return err
}
