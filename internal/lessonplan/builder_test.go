package lessonplan

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 5, 16, 9, 0, 0, 0, time.UTC)

func testBuilder(seed uint64) *Builder {
	return NewBuilder(
		WithRand(rand.New(rand.NewPCG(seed, seed))),
		WithClock(func() time.Time { return fixedTime }),
	)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    Request
		wantErr error
	}{
		{
			name: "defaults",
			req:  Request{Theme: " Facial recognition ", Objectives: "Discuss fairness"},
			want: Request{Level: ElementaryI, DurationMinutes: DefaultDuration, Theme: "Facial recognition", Objectives: "Discuss fairness"},
		},
		{
			name: "curriculum deduplicated",
			req: Request{
				Level: HighSchool, DurationMinutes: 90, Theme: "t", Objectives: "o",
				Curriculum: []string{"History", " ", "Mathematics", "History"},
			},
			want: Request{
				Level: HighSchool, DurationMinutes: 90, Theme: "t", Objectives: "o",
				Curriculum: []string{"History", "Mathematics"},
			},
		},
		{
			name:    "missing theme",
			req:     Request{Objectives: "o"},
			wantErr: ErrMissingField,
		},
		{
			name:    "blank objectives",
			req:     Request{Theme: "t", Objectives: "   "},
			wantErr: ErrMissingField,
		},
		{
			name:    "unknown level",
			req:     Request{Level: "University", Theme: "t", Objectives: "o"},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "too short",
			req:     Request{DurationMinutes: 29, Theme: "t", Objectives: "o"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "too long",
			req:     Request{DurationMinutes: 121, Theme: "t", Objectives: "o"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "unknown subject",
			req:     Request{Theme: "t", Objectives: "o", Curriculum: []string{"Alchemy"}},
			wantErr: ErrInvalidSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNamesAllMissingFields(t *testing.T) {
	_, err := Normalize(Request{})
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "theme, objectives")
}

func TestBuild(t *testing.T) {
	b := testBuilder(1)
	p, err := b.Build(Request{
		Level:           ElementaryII,
		DurationMinutes: 50,
		Theme:           "Biased recommendations",
		Objectives:      "Recognize unfair suggestions",
		Curriculum:      []string{"Mathematics", "Geography"},
	})
	require.NoError(t, err)

	assert.Zero(t, p.ID)
	assert.Equal(t, ElementaryII, p.Level)
	assert.Equal(t, DefaultResources, p.Resources)
	assert.Equal(t, fixedTime, p.CreatedAt)

	assert.True(t, strings.HasPrefix(p.Content, "## Lesson Plan: Biased recommendations\n"))
	assert.Contains(t, p.Content, "**Duration**: 50 minutes")
	assert.Contains(t, p.Content, "**Connected areas**: Mathematics, Geography")
	assert.Contains(t, p.Content, "### Objectives\nRecognize unfair suggestions\n")
	assert.Contains(t, p.Content, "2. **Practical Activity (15 min)**")
	assert.Contains(t, p.Content, "**Resources**: Basic materials")

	var analysis, activity int
	for _, s := range analysisSubjects {
		if strings.Contains(p.Content, "Analysis of "+s) {
			analysis++
		}
	}
	for _, a := range practiceActivities {
		if strings.Contains(p.Content, "   - "+a+"\n") {
			activity++
		}
	}
	assert.Equal(t, 1, analysis)
	assert.Equal(t, 1, activity)
}

func TestBuildCustomResourcesAndInterdisciplinary(t *testing.T) {
	p, err := testBuilder(2).Build(Request{Theme: "t", Objectives: "o", Resources: "Tablets"})
	require.NoError(t, err)

	assert.Equal(t, "Tablets", p.Resources)
	assert.Contains(t, p.Content, "**Connected areas**: Interdisciplinary")
	assert.Contains(t, p.Content, "**Resources**: Tablets")
	assert.Contains(t, p.Content, "2. **Practical Activity (25 min)**")
}

func TestBuildReproducible(t *testing.T) {
	req := Request{Theme: "t", Objectives: "o"}
	a, err := testBuilder(7).Build(req)
	require.NoError(t, err)
	b, err := testBuilder(7).Build(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildRejectsInvalidRequest(t *testing.T) {
	_, err := NewBuilder().Build(Request{Theme: "only a theme"})
	assert.ErrorIs(t, err, ErrMissingField)
}
