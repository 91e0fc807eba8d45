// Package content holds the static teaching material: documented bias
// examples, teacher reports, the sources and cycle of bias and a list of
// external resources.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrUnknownCategory is returned when no example matches a category
var ErrUnknownCategory = errors.New("unknown bias category")

// Example documents one kind of bias found in education
type Example struct {
	Category   string `yaml:"category" json:"category"`
	Example    string `yaml:"example" json:"example"`
	Impact     string `yaml:"impact" json:"impact"`
	Activity   string `yaml:"activity" json:"activity"`
	Mitigation string `yaml:"mitigation" json:"mitigation"`
}

// SourceGroup lists where bias comes from at one stage
type SourceGroup struct {
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items" json:"items"`
}

// CycleStage is one step of the self-reinforcing bias cycle
type CycleStage struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Link is an external resource
type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// ResourceGroup groups links under a heading
type ResourceGroup struct {
	Name  string `yaml:"name" json:"name"`
	Links []Link `yaml:"links" json:"links"`
}

// Catalog is the full set of teaching material
type Catalog struct {
	Examples  []Example       `yaml:"examples" json:"examples"`
	Reports   []string        `yaml:"reports" json:"reports"`
	Sources   []SourceGroup   `yaml:"sources" json:"sources"`
	Cycle     []CycleStage    `yaml:"cycle" json:"cycle"`
	Resources []ResourceGroup `yaml:"resources" json:"resources"`
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Reports) == 0 {
		return nil, fmt.Errorf("failed to parse catalog: no teacher reports")
	}
	return &c, nil
}

// Example returns the example for a category, ignoring case. "race" also
// matches "Race/Ethnicity".
func (c *Catalog) Example(category string) (Example, error) {
	want := strings.ToLower(strings.TrimSpace(category))
	for _, e := range c.Examples {
		name := strings.ToLower(e.Category)
		if name == want {
			return e, nil
		}
		if head, _, ok := strings.Cut(name, "/"); ok && head == want {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// RandomReport picks one teacher report
func (c *Catalog) RandomReport(r *rand.Rand) string {
	return c.Reports[r.IntN(len(c.Reports))]
}
