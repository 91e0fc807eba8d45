package dataset

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSeed is the seed used by the classroom demonstration
const DefaultSeed uint32 = 42

// Deflation multiplies RecommendedScore by Factor for every record whose
// Attribute value is one of Categories.
type Deflation struct {
	Attribute  Attribute
	Categories []Category
	Factor     float64
}

// Config controls dataset generation
type Config struct {
	Size       int
	Mean       float64
	StdDev     float64
	Deflations []Deflation
}

// DefaultConfig returns the biased setup: 300 students, scores drawn from
// Normal(7, 1.5) and four compounding deflations applied in order.
func DefaultConfig() Config {
	return Config{
		Size:   300,
		Mean:   7,
		StdDev: 1.5,
		Deflations: []Deflation{
			{Attribute: Gender, Categories: []Category{Female}, Factor: 0.95},
			{Attribute: Gender, Categories: []Category{NonBinary}, Factor: 0.90},
			{Attribute: Race, Categories: []Category{Black, Mixed}, Factor: 0.93},
			{Attribute: SocioeconomicLevel, Categories: []Category{Low}, Factor: 0.92},
		},
	}
}

// Validate checks that the configuration can be generated
func (c Config) Validate() error {
	var errs []error
	if c.Size < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %d", c.Size))
	}
	if c.StdDev < 0 || math.IsNaN(c.StdDev) {
		errs = append(errs, fmt.Errorf("stddev must not be negative, got %v", c.StdDev))
	}
	if math.IsNaN(c.Mean) || math.IsInf(c.Mean, 0) {
		errs = append(errs, fmt.Errorf("mean must be finite, got %v", c.Mean))
	}
	for i, d := range c.Deflations {
		if !d.Attribute.valid() {
			errs = append(errs, fmt.Errorf("deflation %d: %w: %d", i, ErrInvalidAttribute, int(d.Attribute)))
		}
	}
	return errors.Join(errs...)
}

// Generate builds the default biased table for seed. The same seed always
// yields an identical table.
func Generate(seed uint32) *Table {
	t, err := GenerateWithConfig(seed, DefaultConfig())
	if err != nil {
		// DefaultConfig always validates
		panic(err)
	}
	return t
}

// GenerateWithConfig builds a table for seed using cfg. Columns are drawn
// one at a time in the order Gender, Race, Socioeconomic level,
// RecommendedScore, ActualScore; deflations are applied afterwards in the
// order they are listed.
func GenerateWithConfig(seed uint32, cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset config: %w", err)
	}

	src := newSource(seed)
	t := &Table{
		Gender:             drawCategories(src, Gender, cfg.Size),
		Race:               drawCategories(src, Race, cfg.Size),
		SocioeconomicLevel: drawCategories(src, SocioeconomicLevel, cfg.Size),
	}
	t.RecommendedScore = src.normal(cfg.Mean, cfg.StdDev, cfg.Size)
	t.ActualScore = src.normal(cfg.Mean, cfg.StdDev, cfg.Size)

	for _, d := range cfg.Deflations {
		applyDeflation(t, d)
	}
	return t, nil
}

func drawCategories(src *source, a Attribute, n int) []Category {
	cw := weights[a]
	p := make([]float64, len(cw))
	for i, w := range cw {
		p[i] = w.p
	}

	out := make([]Category, n)
	for i, idx := range src.choice(p, n) {
		out[i] = cw[idx].category
	}
	return out
}

func applyDeflation(t *Table, d Deflation) {
	col, _ := t.Column(d.Attribute)
	match := make(map[Category]bool, len(d.Categories))
	for _, c := range d.Categories {
		match[c] = true
	}
	for i, c := range col {
		if match[c] {
			t.RecommendedScore[i] *= d.Factor
		}
	}
}
