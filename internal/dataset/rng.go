package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mathext/prng"
)

// source reproduces the legacy NumPy RandomState stream: MT19937 seeded
// with init_genrand, 53-bit uniform doubles, cumulative-weight choice and
// the polar Box-Muller normal that caches its second deviate.
type source struct {
	mt       *prng.MT19937
	hasGauss bool
	gauss    float64
}

func newSource(seed uint32) *source {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return &source{mt: mt}
}

// float64 returns a uniform value in [0, 1)
func (s *source) float64() float64 {
	a := s.mt.Uint32() >> 5
	b := s.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// choice draws n indexes into p. All uniforms are drawn before any index
// is resolved, matching a column-at-a-time draw.
func (s *source) choice(p []float64, n int) []int {
	cdf := make([]float64, len(p))
	var sum float64
	for i, w := range p {
		sum += w
		cdf[i] = sum
	}
	last := cdf[len(cdf)-1]
	for i := range cdf {
		cdf[i] /= last
	}

	u := make([]float64, n)
	for i := range u {
		u[i] = s.float64()
	}

	idx := make([]int, n)
	for i, v := range u {
		idx[i] = sort.Search(len(cdf), func(j int) bool { return cdf[j] > v })
	}
	return idx
}

func (s *source) standardNormal() float64 {
	if s.hasGauss {
		s.hasGauss = false
		g := s.gauss
		s.gauss = 0
		return g
	}

	var x1, x2, r2 float64
	for {
		x1 = 2.0*s.float64() - 1.0
		x2 = 2.0*s.float64() - 1.0
		r2 = x1*x1 + x2*x2
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}
	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	s.gauss = f * x1
	s.hasGauss = true
	return f * x2
}

// normal draws n values from Normal(mean, stddev)
func (s *source) normal(mean, stddev float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + stddev*s.standardNormal()
	}
	return out
}
