package gradebook

import (
	"math"

	"github.com/DrFaustest/Basic-grade-book/core"
)

// letter bands, inclusive at their lower bound
var letterBands = []struct {
	min    float64
	letter string
}{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
}

// StudentReport is one row of a class report.
type StudentReport struct {
	Student    string
	Percentage float64
	Graded     bool // false when nothing is graded yet
	Letter     string
}

// ClassGrade returns the student's percentage over graded assignments, rounded to 2 decimals.
// Ungraded assignments count neither for nor against the student.
// ok is false when the class or student is missing or nothing is graded.
func (svc *Service) ClassGrade(class, student string) (pct float64, ok bool) {
	rec, found := svc.doc[core.CleanString(class)][core.CleanString(student)]
	if !found {
		return 0, false
	}
	return Percentage(rec)
}

// Percentage aggregates a student record. A graded score without max_points adds nothing to the total.
func Percentage(rec StudentRecord) (float64, bool) {
	var earned, total int
	var graded bool
	for _, score := range rec {
		pts, ok := score.Value.Points()
		if !ok {
			continue
		}
		graded = true
		earned += pts
		if score.MaxPoints != nil {
			total += *score.MaxPoints
		}
	}
	if !graded || total == 0 {
		return 0, false
	}
	return math.Round(100*float64(earned)/float64(total)*100) / 100, true
}

// LetterGrade maps a percentage to A-F, or "Not Graded" when ok is false.
// It takes ClassGrade's results directly: LetterGrade(svc.ClassGrade(class, student)).
func LetterGrade(pct float64, ok bool) string {
	if !ok {
		return NotGraded
	}
	for _, band := range letterBands {
		if pct >= band.min {
			return band.letter
		}
	}
	return "F"
}

// Report returns every student's percentage and letter grade, in name order.
func (svc *Service) Report(class string) []StudentReport {
	cls := svc.doc[core.CleanString(class)]
	reports := make([]StudentReport, 0, len(cls))
	for _, student := range cls.Students() {
		pct, ok := Percentage(cls[student])
		reports = append(reports, StudentReport{
			Student:    student,
			Percentage: pct,
			Graded:     ok,
			Letter:     LetterGrade(pct, ok),
		})
	}
	return reports
}
