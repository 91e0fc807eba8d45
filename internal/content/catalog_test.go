package content

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Examples, 4)
	assert.Len(t, c.Reports, 3)
	assert.Len(t, c.Sources, 3)
	assert.Len(t, c.Cycle, 5)
	assert.NotEmpty(t, c.Resources)

	for _, e := range c.Examples {
		assert.NotEmpty(t, e.Example, e.Category)
		assert.NotEmpty(t, e.Impact, e.Category)
		assert.NotEmpty(t, e.Activity, e.Category)
		assert.NotEmpty(t, e.Mitigation, e.Category)
	}
}

func TestCatalogExample(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		category string
		want     string
		wantErr  bool
	}{
		{name: "exact", category: "Gender", want: "Gender"},
		{name: "case insensitive", category: "cultural", want: "Cultural"},
		{name: "full name", category: "race/ethnicity", want: "Race/Ethnicity"},
		{name: "short name", category: "Race", want: "Race/Ethnicity"},
		{name: "unknown", category: "Astrology", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Example(tt.category)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestRandomReport(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 20; i++ {
		assert.Contains(t, c.Reports, c.RandomReport(r))
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("reports: [a]\nbogus: true\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("examples: []\n"))
	assert.Error(t, err)
}
