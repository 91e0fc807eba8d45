// Package lessonplan builds lesson plans about AI bias from a teacher's form
// input and keeps them per session behind the Store interface.
package lessonplan

import (
	"errors"
	"time"
)

var (
	// ErrMissingField is returned when a required field is empty
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidLevel is returned for an unknown school level
	ErrInvalidLevel = errors.New("invalid school level")
	// ErrInvalidDuration is returned for a duration outside the allowed range
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidSubject is returned for an unknown curriculum area
	ErrInvalidSubject = errors.New("invalid curriculum subject")
	// ErrNotFound is returned when a plan does not exist in the session
	ErrNotFound = errors.New("lesson plan not found")
)

// School levels
const (
	ElementaryI  = "Elementary I"
	ElementaryII = "Elementary II"
	HighSchool   = "High School"
)

// Levels lists the accepted school levels
var Levels = []string{ElementaryI, ElementaryII, HighSchool}

// Subjects lists the curriculum areas a plan can connect with
var Subjects = []string{"Portuguese Language", "Mathematics", "Science", "History", "Geography"}

// Duration bounds in minutes
const (
	MinDuration     = 30
	MaxDuration     = 120
	DefaultDuration = 60
)

// DefaultResources is stored when the teacher lists no resources
const DefaultResources = "Computer, projector, printed spreadsheets"

// Request is the lesson plan form
type Request struct {
	Level           string   `json:"level"`
	DurationMinutes int      `json:"duration_minutes"`
	Theme           string   `json:"theme"`
	Objectives      string   `json:"objectives"`
	Resources       string   `json:"resources"`
	Curriculum      []string `json:"curriculum"`
}

// Plan is a generated lesson plan
type Plan struct {
	ID              int       `json:"id"`
	Level           string    `json:"level"`
	Theme           string    `json:"theme"`
	Objectives      string    `json:"objectives"`
	DurationMinutes int       `json:"duration_minutes"`
	Resources       string    `json:"resources"`
	Curriculum      []string  `json:"curriculum"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}
