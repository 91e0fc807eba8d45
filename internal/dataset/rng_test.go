package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceMatchesReferenceMT19937(t *testing.T) {
	src := newSource(5489)
	assert.Equal(t, uint32(3499211612), src.mt.Uint32())
}

func TestSourceUniformStream(t *testing.T) {
	src := newSource(42)
	want := []float64{0.3745401188473625, 0.9507143064099162, 0.7319939418114051}
	for i, w := range want {
		assert.Equal(t, w, src.float64(), "draw %d", i)
	}
}

func TestSourceNormalStream(t *testing.T) {
	src := newSource(42)
	want := []float64{0.4967141530112327, -0.13826430117118466, 0.6476885381006925}
	for i, w := range want {
		assert.InDelta(t, w, src.standardNormal(), 1e-12, "draw %d", i)
	}
}

func TestSourceNormalScalesDeviates(t *testing.T) {
	a := newSource(7).normal(0, 1, 20)
	b := newSource(7).normal(7, 1.5, 20)
	require.Len(t, b, 20)
	for i := range a {
		assert.InDelta(t, 7+1.5*a[i], b[i], 1e-12)
	}
}

func TestSourceChoice(t *testing.T) {
	tests := []struct {
		name string
		seed uint32
		p    []float64
		n    int
		want []int
	}{
		{
			name: "cumulative search on seed 42",
			seed: 42,
			p:    []float64{0.45, 0.45, 0.1},
			n:    3,
			want: []int{0, 2, 1},
		},
		{
			name: "single category",
			seed: 1,
			p:    []float64{1},
			n:    4,
			want: []int{0, 0, 0, 0},
		},
		{
			name: "zero weight never drawn",
			seed: 3,
			p:    []float64{0, 1},
			n:    5,
			want: []int{1, 1, 1, 1, 1},
		},
		{
			name: "no draws",
			seed: 42,
			p:    []float64{0.5, 0.5},
			n:    0,
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newSource(tt.seed).choice(tt.p, tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceChoiceNormalizesWeights(t *testing.T) {
	a := newSource(11).choice([]float64{1, 1, 2}, 50)
	b := newSource(11).choice([]float64{0.25, 0.25, 0.5}, 50)
	assert.Equal(t, a, b)
}
