package dataset

import (
	"fmt"
	"strings"
)

// Category is a value of one of the categorical columns
type Category string

// Gender categories
const (
	Male      Category = "Male"
	Female    Category = "Female"
	NonBinary Category = "Non-binary"
)

// Race/ethnicity categories
const (
	White      Category = "White"
	Black      Category = "Black"
	Mixed      Category = "Mixed"
	Asian      Category = "Asian"
	Indigenous Category = "Indigenous"
)

// Socioeconomic level categories
const (
	High   Category = "High"
	Medium Category = "Medium"
	Low    Category = "Low"
)

// Attribute identifies one of the three categorical columns
type Attribute int

const (
	Gender Attribute = iota + 1
	Race
	SocioeconomicLevel
)

// Attributes lists the groupable columns in table order
var Attributes = []Attribute{Gender, Race, SocioeconomicLevel}

// String returns the display name of the attribute
func (a Attribute) String() string {
	switch a {
	case Gender:
		return "Gender"
	case Race:
		return "Race"
	case SocioeconomicLevel:
		return "Socioeconomic Level"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// MarshalText encodes the attribute by its display name
func (a Attribute) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAttribute, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes any spelling accepted by ParseAttribute
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Attribute) valid() bool {
	return a >= Gender && a <= SocioeconomicLevel
}

// ParseAttribute resolves an attribute name. Matching ignores case,
// spaces, underscores and hyphens, so "Socioeconomic Level",
// "socioeconomic_level" and "SocioeconomicLevel" are equivalent.
func ParseAttribute(name string) (Attribute, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	switch key {
	case "gender":
		return Gender, nil
	case "race", "race/ethnicity", "ethnicity":
		return Race, nil
	case "socioeconomiclevel", "socioeconomic", "ses":
		return SocioeconomicLevel, nil
	}
	return 0, fmt.Errorf("%w: %q (must be Gender, Race or Socioeconomic Level)", ErrInvalidAttribute, name)
}

// Categories returns the declared categories of an attribute in
// declaration order, or nil for an unknown attribute.
func Categories(a Attribute) []Category {
	w, ok := weights[a]
	if !ok {
		return nil
	}
	out := make([]Category, len(w))
	for i, cw := range w {
		out[i] = cw.category
	}
	return out
}

type categoryWeight struct {
	category Category
	p        float64
}

var weights = map[Attribute][]categoryWeight{
	Gender: {
		{Male, 0.45},
		{Female, 0.45},
		{NonBinary, 0.1},
	},
	Race: {
		{White, 0.45},
		{Black, 0.25},
		{Mixed, 0.2},
		{Asian, 0.05},
		{Indigenous, 0.05},
	},
	SocioeconomicLevel: {
		{High, 0.2},
		{Medium, 0.5},
		{Low, 0.3},
	},
}

// Record is one synthetic student
type Record struct {
	Gender             Category `json:"gender"`
	Race               Category `json:"race"`
	SocioeconomicLevel Category `json:"socioeconomic_level"`
	RecommendedScore   float64  `json:"recommended_score"`
	ActualScore        float64  `json:"actual_score"`
}

// Table holds generated records column by column. All columns have the
// same length.
type Table struct {
	Gender             []Category
	Race               []Category
	SocioeconomicLevel []Category
	RecommendedScore   []float64
	ActualScore        []float64
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.RecommendedScore)
}

// Row returns the i-th record
func (t *Table) Row(i int) Record {
	return Record{
		Gender:             t.Gender[i],
		Race:               t.Race[i],
		SocioeconomicLevel: t.SocioeconomicLevel[i],
		RecommendedScore:   t.RecommendedScore[i],
		ActualScore:        t.ActualScore[i],
	}
}

// Records returns the table as rows
func (t *Table) Records() []Record {
	out := make([]Record, t.Len())
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// Column returns the categorical column for an attribute
func (t *Table) Column(a Attribute) ([]Category, error) {
	switch a {
	case Gender:
		return t.Gender, nil
	case Race:
		return t.Race, nil
	case SocioeconomicLevel:
		return t.SocioeconomicLevel, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidAttribute, a)
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	return &Table{
		Gender:             append([]Category(nil), t.Gender...),
		Race:               append([]Category(nil), t.Race...),
		SocioeconomicLevel: append([]Category(nil), t.SocioeconomicLevel...),
		RecommendedScore:   append([]float64(nil), t.RecommendedScore...),
		ActualScore:        append([]float64(nil), t.ActualScore...),
	}
}
