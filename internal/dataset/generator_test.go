package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func undeflated(t *testing.T, seed uint32) *Table {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Deflations = nil
	base, err := GenerateWithConfig(seed, cfg)
	require.NoError(t, err)
	return base
}

func TestGenerateSize(t *testing.T) {
	tbl := Generate(DefaultSeed)

	assert.Equal(t, 300, tbl.Len())
	assert.Len(t, tbl.Gender, 300)
	assert.Len(t, tbl.Race, 300)
	assert.Len(t, tbl.SocioeconomicLevel, 300)
	assert.Len(t, tbl.ActualScore, 300)
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultSeed)
	b := Generate(DefaultSeed)
	assert.Equal(t, a, b)

	c := Generate(DefaultSeed + 1)
	assert.NotEqual(t, a.RecommendedScore, c.RecommendedScore)
}

func TestGenerateFirstGenderDraws(t *testing.T) {
	tbl := Generate(DefaultSeed)
	assert.Equal(t, []Category{Male, NonBinary, Female}, tbl.Gender[:3])
}

func TestGenerateProportions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 30000
	tbl, err := GenerateWithConfig(DefaultSeed, cfg)
	require.NoError(t, err)

	for _, attr := range Attributes {
		col, err := tbl.Column(attr)
		require.NoError(t, err)

		counts := make(map[Category]int)
		for _, c := range col {
			counts[c]++
		}
		for _, cw := range weights[attr] {
			got := float64(counts[cw.category]) / float64(len(col))
			assert.InDelta(t, cw.p, got, 0.02, "%s=%s", attr, cw.category)
		}
	}
}

func TestGenerateDefaultSeedCounts(t *testing.T) {
	tbl := Generate(DefaultSeed)

	tests := []struct {
		attribute Attribute
		want      map[Category]int
	}{
		{attribute: Gender, want: map[Category]int{Male: 136, Female: 135, NonBinary: 29}},
		{attribute: Race, want: map[Category]int{White: 128, Black: 77, Mixed: 56, Asian: 16, Indigenous: 23}},
		{attribute: SocioeconomicLevel, want: map[Category]int{High: 70, Medium: 152, Low: 78}},
	}

	for _, tt := range tests {
		t.Run(tt.attribute.String(), func(t *testing.T) {
			col, err := tbl.Column(tt.attribute)
			require.NoError(t, err)

			counts := make(map[Category]int)
			for _, c := range col {
				counts[c]++
			}
			assert.Equal(t, tt.want, counts)

			for _, cw := range weights[tt.attribute] {
				share := float64(counts[cw.category]) / float64(tbl.Len())
				assert.InDelta(t, cw.p, share, 0.05, "%s=%s", tt.attribute, cw.category)
			}
		})
	}
}

func TestGenerateDefaultSeedCoversAllCategories(t *testing.T) {
	tbl := Generate(DefaultSeed)
	for _, attr := range Attributes {
		observed, err := ObservedCategories(tbl, attr)
		require.NoError(t, err)
		assert.ElementsMatch(t, Categories(attr), observed, attr.String())
	}
}

func TestGenerateDeflatesRecommendedScore(t *testing.T) {
	tbl := Generate(DefaultSeed)
	base := undeflated(t, DefaultSeed)

	// categorical draws come before score draws, so deflations do not
	// shift the stream
	require.Equal(t, base.Gender, tbl.Gender)
	require.Equal(t, base.Race, tbl.Race)
	require.Equal(t, base.SocioeconomicLevel, tbl.SocioeconomicLevel)

	for i := 0; i < tbl.Len(); i++ {
		want := base.RecommendedScore[i]
		switch tbl.Gender[i] {
		case Female:
			want *= 0.95
		case NonBinary:
			want *= 0.90
		}
		if tbl.Race[i] == Black || tbl.Race[i] == Mixed {
			want *= 0.93
		}
		if tbl.SocioeconomicLevel[i] == Low {
			want *= 0.92
		}
		assert.Equal(t, want, tbl.RecommendedScore[i], "row %d", i)
	}
}

func TestGenerateFemaleOnlyDeflation(t *testing.T) {
	tbl := Generate(DefaultSeed)
	base := undeflated(t, DefaultSeed)

	checked := 0
	for i := 0; i < tbl.Len(); i++ {
		if tbl.Gender[i] != Female || tbl.Race[i] == Black || tbl.Race[i] == Mixed || tbl.SocioeconomicLevel[i] == Low {
			continue
		}
		assert.Equal(t, base.RecommendedScore[i]*0.95, tbl.RecommendedScore[i], "row %d", i)
		checked++
	}
	assert.NotZero(t, checked)
}

func TestGenerateLeavesActualScore(t *testing.T) {
	tbl := Generate(DefaultSeed)
	base := undeflated(t, DefaultSeed)
	assert.Equal(t, base.ActualScore, tbl.ActualScore)
}

func TestGenerateUntouchedGroupsKeepBaseScore(t *testing.T) {
	tbl := Generate(DefaultSeed)
	base := undeflated(t, DefaultSeed)

	for i := 0; i < tbl.Len(); i++ {
		if tbl.Gender[i] == Male && (tbl.Race[i] == White || tbl.Race[i] == Asian || tbl.Race[i] == Indigenous) && tbl.SocioeconomicLevel[i] != Low {
			assert.Equal(t, base.RecommendedScore[i], tbl.RecommendedScore[i], "row %d", i)
		}
	}
}

func TestGenerateWithConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "empty table", mutate: func(c *Config) { c.Size = 0 }},
		{name: "negative size", mutate: func(c *Config) { c.Size = -1 }, wantErr: true},
		{name: "negative stddev", mutate: func(c *Config) { c.StdDev = -0.1 }, wantErr: true},
		{
			name: "unknown deflation attribute",
			mutate: func(c *Config) {
				c.Deflations = append(c.Deflations, Deflation{Attribute: Attribute(9), Factor: 0.5})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			tbl, err := GenerateWithConfig(DefaultSeed, cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg.Size, tbl.Len())
		})
	}
}
