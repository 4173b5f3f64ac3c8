// Package seed generates synthetic gradebooks for testing and demos.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core"
	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

const (
	maxPoints       = 100
	ungradedPercent = 10
)

type Options struct {
	Course      string `json:"course" validate:"required,notblank"`
	Students    int    `json:"students" validate:"gte=0"`
	Assignments int    `json:"assignments" validate:"gte=0"`
	Seed        int64  `json:"seed"`
}

func (opts *Options) Validate(v *core.Validator) error {
	opts.Course = core.CleanString(opts.Course)
	return v.Struct(opts)
}

// Generate builds a document with one course of "Student i" records, each holding every
// "Assignment j" out of 100 points, scored uniformly in [0, 100] with roughly 10% left ungraded.
// The same Options always yield the same document.
func Generate(opts Options) gradebook.Document {
	rnd := rand.New(rand.NewSource(opts.Seed))
	cls := make(gradebook.Class, opts.Students)
	for i := 1; i <= opts.Students; i++ {
		rec := make(gradebook.StudentRecord, opts.Assignments)
		for j := 1; j <= opts.Assignments; j++ {
			value := gradebook.Graded(rnd.Intn(maxPoints + 1))
			if rnd.Intn(100) < ungradedPercent {
				value = gradebook.Ungraded()
			}
			rec[fmt.Sprintf("Assignment %d", j)] = gradebook.Score{
				Value:     value,
				MaxPoints: gradebook.Points(maxPoints),
			}
		}
		cls[fmt.Sprintf("Student %d", i)] = rec
	}
	return gradebook.Document{opts.Course: cls}
}

// Materialize writes doc as the repository's whole document, replacing what was there.
func Materialize(repo gradebook.Repository, doc gradebook.Document) error {
	if err := repo.Persist(doc); err != nil {
		return errors.Wrap(err, "seeding gradebook")
	}
	return nil
}
