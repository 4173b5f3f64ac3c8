package gradebook

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NotGraded is the durable form of an ungraded score.
const NotGraded = "Not Graded"

// Grade is either a non-negative number of points or Ungraded.
// The zero value is Ungraded.
type Grade struct {
	points int
	graded bool
}

func Graded(points int) Grade { return Grade{points: points, graded: true} }

func Ungraded() Grade { return Grade{} }

// ParseGrade reads a grade as typed by a user: an integer, or "ungraded"/"Not Graded"/"-".
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "ungraded", strings.ToLower(NotGraded), "-":
		return Ungraded(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Grade{}, errors.Errorf("invalid grade %q", s)
	}
	return Graded(n), nil
}

func (g Grade) Points() (int, bool) { return g.points, g.graded }

func (g Grade) IsGraded() bool { return g.graded }

func (g Grade) String() string {
	if !g.graded {
		return NotGraded
	}
	return strconv.Itoa(g.points)
}

func (g Grade) MarshalJSON() ([]byte, error) {
	if !g.graded {
		return json.Marshal(NotGraded)
	}
	return []byte(strconv.Itoa(g.points)), nil
}

func (g *Grade) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		if val != NotGraded {
			return errors.Errorf("invalid grade %q", val)
		}
		*g = Ungraded()
	case json.Number:
		n, err := strconv.Atoi(val.String())
		if err != nil {
			return errors.Errorf("grade %s is not an integer", val)
		}
		if n < 0 {
			return errors.Errorf("grade %d is negative", n)
		}
		*g = Graded(n)
	default:
		return errors.Errorf("invalid grade %s", string(b))
	}
	return nil
}

// Points returns a pointer to n, for Score.MaxPoints and NewAssignment fields.
func Points(n int) *int { return &n }

type (
	// Score is one student's result for one assignment.
	// A nil MaxPoints means the assignment's cap is not set.
	Score struct {
		Value     Grade
		MaxPoints *int
	}

	// StudentRecord maps assignment names to scores.
	StudentRecord map[string]Score

	// Class maps student names to their records.
	Class map[string]StudentRecord

	// Document is the whole gradebook, keyed by class name. It is always read and written as one unit.
	Document map[string]Class
)

type scoreJSON struct {
	Value     *Grade `json:"value"`
	MaxPoints *int   `json:"max_points"`
}

func (s Score) MarshalJSON() ([]byte, error) {
	v := s.Value
	return json.Marshal(scoreJSON{Value: &v, MaxPoints: s.MaxPoints})
}

// UnmarshalJSON only accepts the nested {"value", "max_points"} form.
// The legacy flat form (assignment: score) is rejected.
func (s *Score) UnmarshalJSON(b []byte) error {
	var raw scoreJSON
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw.Value == nil {
		return errors.New(`score has no "value"`)
	}
	if raw.MaxPoints != nil && *raw.MaxPoints < 0 {
		return errors.Errorf("max_points %d is negative", *raw.MaxPoints)
	}
	s.Value = *raw.Value
	s.MaxPoints = raw.MaxPoints
	return nil
}

func (s Score) clone() Score {
	if s.MaxPoints != nil {
		s.MaxPoints = Points(*s.MaxPoints)
	}
	return s
}

// Clone returns a deep copy of doc. Nil maps are replaced with empty ones.
func (doc Document) Clone() Document {
	out := make(Document, len(doc))
	for name, class := range doc {
		out[name] = class.clone()
	}
	return out
}

// Classes returns the sorted class names.
func (doc Document) Classes() []string {
	return sortedKeys(len(doc), func(add func(string)) {
		for name := range doc {
			add(name)
		}
	})
}

func (c Class) clone() Class {
	out := make(Class, len(c))
	for name, rec := range c {
		out[name] = rec.clone()
	}
	return out
}

// Students returns the sorted student names.
func (c Class) Students() []string {
	return sortedKeys(len(c), func(add func(string)) {
		for name := range c {
			add(name)
		}
	})
}

// Assignments returns the sorted union of every student's assignment names.
func (c Class) Assignments() []string {
	seen := make(map[string]struct{})
	for _, rec := range c {
		for name := range rec {
			seen[name] = struct{}{}
		}
	}
	return sortedKeys(len(seen), func(add func(string)) {
		for name := range seen {
			add(name)
		}
	})
}

// HasAssignment reports whether any student holds the assignment.
func (c Class) HasAssignment(assignment string) bool {
	for _, rec := range c {
		if _, ok := rec[assignment]; ok {
			return true
		}
	}
	return false
}

// MaxPoints returns the first cap set for the assignment, looking at students in name order.
func (c Class) MaxPoints(assignment string) *int {
	for _, student := range c.Students() {
		if score, ok := c[student][assignment]; ok && score.MaxPoints != nil {
			return Points(*score.MaxPoints)
		}
	}
	return nil
}

func (rec StudentRecord) clone() StudentRecord {
	out := make(StudentRecord, len(rec))
	for name, score := range rec {
		out[name] = score.clone()
	}
	return out
}

func sortedKeys(n int, each func(add func(string))) []string {
	keys := make([]string, 0, n)
	each(func(k string) { keys = append(keys, k) })
	sort.Strings(keys)
	return keys
}
