package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tordrt/biaslab/internal/lessonplan"
)

// MultiFileFormatter writes lesson plans to a directory, one file per plan
// plus an overview
type MultiFileFormatter struct {
	OutputDir    string
	OutputFormat string // "text" or "markdown"
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir, format string) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir:    outputDir,
		OutputFormat: format,
	}
}

// Format writes the plans to multiple files
func (f *MultiFileFormatter) Format(plans []lessonplan.Plan) error {
	if f.OutputFormat != formatMarkdown && f.OutputFormat != formatText {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", f.OutputFormat)
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := make([]lessonplan.Plan, len(plans))
	copy(sorted, plans)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	if err := f.writeOverview(sorted); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}

	for _, p := range sorted {
		if err := f.writePlanFile(p); err != nil {
			return fmt.Errorf("failed to write plan file for %d: %w", p.ID, err)
		}
	}

	return nil
}

// PlanFileName returns the file name used for a plan
func (f *MultiFileFormatter) PlanFileName(p lessonplan.Plan) string {
	return fmt.Sprintf("plan-%03d%s", p.ID, f.getFileExtension())
}

func (f *MultiFileFormatter) writeOverview(plans []lessonplan.Plan) error {
	filename := filepath.Join(f.OutputDir, "_overview"+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == formatMarkdown {
		_, _ = fmt.Fprintf(file, "# Lesson Plans Overview\n\n")
		_, _ = fmt.Fprintf(file, "Each plan has a corresponding file: `plan-<id>%s`\n\n", f.getFileExtension())
		for _, p := range plans {
			_, _ = fmt.Fprintf(file, "- [%s](%s) (%s, %d min)\n", p.Theme, f.PlanFileName(p), p.Level, p.DurationMinutes)
		}
		return nil
	}

	_, _ = fmt.Fprintf(file, "LESSON PLANS OVERVIEW\n")
	_, _ = fmt.Fprintf(file, "Each plan has a file: plan-<id>%s\n\n", f.getFileExtension())
	for _, p := range plans {
		_, _ = fmt.Fprintf(file, "%s: %s (%s, %d min)\n", f.PlanFileName(p), p.Theme, p.Level, p.DurationMinutes)
	}
	return nil
}

func (f *MultiFileFormatter) writePlanFile(p lessonplan.Plan) error {
	file, err := os.Create(filepath.Join(f.OutputDir, f.PlanFileName(p)))
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == formatMarkdown {
		return NewMarkdownFormatter(file).FormatPlan(p)
	}

	_, _ = fmt.Fprintf(file, "PLAN %d: %s\n", p.ID, p.Theme)
	_, _ = fmt.Fprintf(file, "Created: %s\n\n", p.CreatedAt.Format(createdLayout))
	_, err = fmt.Fprint(file, p.Content)
	return err
}

func (f *MultiFileFormatter) getFileExtension() string {
	if f.OutputFormat == formatMarkdown {
		return ".md"
	}
	return ".txt"
}
