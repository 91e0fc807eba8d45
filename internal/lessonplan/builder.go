package lessonplan

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

var analysisSubjects = []string{"real cases", "simulated data", "tools they use"}

var practiceActivities = []string{"Poster production", "Structured debate", "Proposal creation"}

// Builder turns requests into plans
type Builder struct {
	intN func(n int) int
	now  func() time.Time
}

// Option configures a Builder
type Option func(*Builder)

// WithRand makes the activity choices come from r. r is not safe for
// concurrent use, so a builder using it must not be shared.
func WithRand(r *rand.Rand) Option {
	return func(b *Builder) { b.intN = r.IntN }
}

// WithClock sets the clock used for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a builder. By default it uses the global random source
// and the wall clock.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{intN: rand.IntN, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Normalize trims the request, applies defaults and validates it
func Normalize(req Request) (Request, error) {
	req.Level = strings.TrimSpace(req.Level)
	req.Theme = strings.TrimSpace(req.Theme)
	req.Objectives = strings.TrimSpace(req.Objectives)
	req.Resources = strings.TrimSpace(req.Resources)

	var missing []string
	if req.Theme == "" {
		missing = append(missing, "theme")
	}
	if req.Objectives == "" {
		missing = append(missing, "objectives")
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if req.Level == "" {
		req.Level = ElementaryI
	}
	if !slices.Contains(Levels, req.Level) {
		return req, fmt.Errorf("%w: %q", ErrInvalidLevel, req.Level)
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = DefaultDuration
	}
	if req.DurationMinutes < MinDuration || req.DurationMinutes > MaxDuration {
		return req, fmt.Errorf("%w: %d minutes (must be between %d and %d)", ErrInvalidDuration, req.DurationMinutes, MinDuration, MaxDuration)
	}

	var curriculum []string
	for _, s := range req.Curriculum {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !slices.Contains(Subjects, s) {
			return req, fmt.Errorf("%w: %q", ErrInvalidSubject, s)
		}
		if !slices.Contains(curriculum, s) {
			curriculum = append(curriculum, s)
		}
	}
	req.Curriculum = curriculum

	return req, nil
}

// Build validates req and renders the plan content. The returned plan has
// no ID; the store assigns one on save.
func (b *Builder) Build(req Request) (Plan, error) {
	req, err := Normalize(req)
	if err != nil {
		return Plan{}, err
	}

	resources := req.Resources
	if resources == "" {
		resources = DefaultResources
	}

	return Plan{
		Level:           req.Level,
		Theme:           req.Theme,
		Objectives:      req.Objectives,
		DurationMinutes: req.DurationMinutes,
		Resources:       resources,
		Curriculum:      req.Curriculum,
		Content:         b.render(req),
		CreatedAt:       b.now(),
	}, nil
}

func (b *Builder) render(req Request) string {
	areas := "Interdisciplinary"
	if len(req.Curriculum) > 0 {
		areas = strings.Join(req.Curriculum, ", ")
	}
	resources := req.Resources
	if resources == "" {
		resources = "Basic materials"
	}

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "## Lesson Plan: %s\n\n", req.Theme)
	_, _ = fmt.Fprintf(&sb, "**Level**: %s  \n", req.Level)
	_, _ = fmt.Fprintf(&sb, "**Duration**: %d minutes  \n", req.DurationMinutes)
	_, _ = fmt.Fprintf(&sb, "**Connected areas**: %s\n\n", areas)

	_, _ = fmt.Fprintf(&sb, "### Objectives\n%s\n\n", req.Objectives)

	_, _ = fmt.Fprintln(&sb, "### Development")
	_, _ = fmt.Fprintln(&sb)
	_, _ = fmt.Fprintln(&sb, "1. **Introduction (15 min)**")
	_, _ = fmt.Fprintln(&sb, "   - Short video about bias in AI")
	_, _ = fmt.Fprintln(&sb, `   - Opening discussion: "What is algorithmic fairness?"`)
	_, _ = fmt.Fprintln(&sb)
	_, _ = fmt.Fprintf(&sb, "2. **Practical Activity (%d min)**\n", req.DurationMinutes-35)
	_, _ = fmt.Fprintf(&sb, "   - Analysis of %s\n", analysisSubjects[b.intN(len(analysisSubjects))])
	_, _ = fmt.Fprintf(&sb, "   - %s\n", practiceActivities[b.intN(len(practiceActivities))])
	_, _ = fmt.Fprintln(&sb)
	_, _ = fmt.Fprintln(&sb, "3. **Conclusion (20 min)**")
	_, _ = fmt.Fprintln(&sb, "   - Summary of learnings")
	_, _ = fmt.Fprintln(&sb, `   - Reflection: "How can we be critical users of AI?"`)
	_, _ = fmt.Fprintln(&sb)
	_, _ = fmt.Fprintf(&sb, "**Resources**: %s\n", resources)

	return sb.String()
}
