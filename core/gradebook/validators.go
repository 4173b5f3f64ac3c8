package gradebook

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/DrFaustest/Basic-grade-book/core"
)

// names closer than this ratio to a missing one are offered as suggestions
const suggestMinRatio = 0.6

// NewClass contains information needed to create a new class.
type NewClass struct {
	Name string `json:"class" validate:"required,notblank"`
}

func (nc *NewClass) Validate(v *core.Validator) error {
	nc.Name = core.CleanString(nc.Name)
	return v.Struct(nc)
}

// NewStudent identifies a student of a class.
type NewStudent struct {
	Class string `json:"class" validate:"required,notblank"`
	Name  string `json:"student" validate:"required,notblank"`
}

func (ns *NewStudent) Validate(v *core.Validator) error {
	ns.Class = core.CleanString(ns.Class)
	ns.Name = core.CleanString(ns.Name)
	return v.Struct(ns)
}

// NewAssignment contains information needed to add an assignment to a class.
type NewAssignment struct {
	Class     string `json:"class" validate:"required,notblank"`
	Name      string `json:"assignment" validate:"required,notblank"`
	MaxPoints *int   `json:"max_points" validate:"omitempty,gte=0"`
	Initial   *int   `json:"initial" validate:"omitempty,gte=0"` // nil means ungraded
}

func (na *NewAssignment) Validate(v *core.Validator) error {
	na.Class = core.CleanString(na.Class)
	na.Name = core.CleanString(na.Name)
	return v.Struct(na)
}

// AssignmentRef identifies an assignment of a class.
type AssignmentRef struct {
	Class string `json:"class" validate:"required,notblank"`
	Name  string `json:"assignment" validate:"required,notblank"`
}

func (ref *AssignmentRef) Validate(v *core.Validator) error {
	ref.Class = core.CleanString(ref.Class)
	ref.Name = core.CleanString(ref.Name)
	return v.Struct(ref)
}

// GradeUpdate identifies a score to set. Points is nil for an ungraded value.
type GradeUpdate struct {
	Class      string `json:"class" validate:"required,notblank"`
	Student    string `json:"student" validate:"required,notblank"`
	Assignment string `json:"assignment" validate:"required,notblank"`
	Points     *int   `json:"value" validate:"omitempty,gte=0"`
}

func (gu *GradeUpdate) Validate(v *core.Validator) error {
	gu.Class = core.CleanString(gu.Class)
	gu.Student = core.CleanString(gu.Student)
	gu.Assignment = core.CleanString(gu.Assignment)
	return v.Struct(gu)
}

// notFound builds the validation error for a missing name, suggesting the closest existing one.
func notFound(kind error, field, name string, candidates []string) error {
	msg := fmt.Sprintf("%s %q does not exist", field, name)
	if match := suggest(name, candidates); match != "" {
		msg += fmt.Sprintf(", did you mean %q?", match)
	}
	return core.NewValidationError(kind, core.FieldError{Field: field, Error: msg})
}

// suggest returns the candidate most similar to name, or "" when none is similar enough.
func suggest(name string, candidates []string) string {
	var (
		best      string
		bestRatio float64
	)
	target := strings.Split(strings.ToLower(name), "")
	for _, cand := range candidates {
		ratio := difflib.NewMatcher(target, strings.Split(strings.ToLower(cand), "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = cand, ratio
		}
	}
	if bestRatio < suggestMinRatio {
		return ""
	}
	return best
}
