package gradebook

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core"
)

var (
	// errors
	ErrMalformedDocument  = errors.New("malformed gradebook document")
	ErrClassExists        = errors.New("class already exists")
	ErrClassNotFound      = errors.New("class does not exist")
	ErrStudentNotFound    = errors.New("student does not exist")
	ErrAssignmentExists   = errors.New("assignment already exists")
	ErrAssignmentNotFound = errors.New("assignment does not exist")
	ErrNoStudents         = errors.New("class has no students, the assignment was not recorded")
	ErrNothingToUndo      = errors.New("no changes to undo")

	// errUnchanged is returned by a mutation that leaves the gradebook as it was.
	errUnchanged = errors.New("unchanged")
)

type (
	// Repository is the durable home of the Document.
	// Load reports a missing document with an error wrapping os.ErrNotExist
	// and an unparseable one with an error wrapping ErrMalformedDocument.
	// Persist must replace the whole document or leave it untouched.
	Repository interface {
		Load() (Document, error)
		Persist(doc Document) error
	}

	Options struct {
		// AutoSync runs every mutation as load, apply, persist.
		// When false, mutations stay in memory until Sync.
		AutoSync     bool
		HistoryLimit int
	}

	// Service owns the in-memory gradebook and its sync with a Repository.
	// It is not safe for concurrent use.
	Service struct {
		repo     Repository
		logger   core.Logger
		validate *core.Validator
		opts     Options

		doc     Document
		dirty   bool
		history []Change // oldest first
	}
)

func NewService(repo Repository, logger core.Logger, opts Options) *Service {
	if opts.HistoryLimit < 0 {
		opts.HistoryLimit = 0
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: core.NewValidator(),
		opts:     opts,
		doc:      Document{},
	}
}

// Reload replaces the in-memory state with the durable document, dropping unsynced changes
// and the undo history, whose snapshots predate the reloaded document.
// On failure the gradebook is empty and the error is returned.
func (svc *Service) Reload() error {
	svc.dirty = false
	svc.history = nil
	doc, err := svc.repo.Load()
	if err != nil {
		svc.doc = Document{}
		if errors.Is(err, os.ErrNotExist) {
			svc.logger.Debug("gradebook document not found, starting empty")
		} else {
			svc.logger.Error("loading gradebook document failed, starting empty", err)
		}
		return errors.Wrap(err, "loading gradebook")
	}
	svc.doc = doc.Clone()
	svc.logger.Debug("gradebook loaded", map[string]interface{}{"classes": len(svc.doc)})
	return nil
}

// Sync persists the in-memory state. On failure the state stays dirty.
func (svc *Service) Sync() error {
	if err := svc.repo.Persist(svc.doc); err != nil {
		svc.logger.Error("persisting gradebook document failed", err)
		return errors.Wrap(err, "syncing gradebook")
	}
	svc.dirty = false
	svc.logger.Debug("gradebook synced", map[string]interface{}{"classes": len(svc.doc)})
	return nil
}

// Dirty reports whether there are changes not yet synced.
func (svc *Service) Dirty() bool { return svc.dirty }

// mutate applies one change to a copy of the current state and adopts the copy on success.
// With AutoSync the current state is first re-read from the repository and the copy is persisted before adoption.
func (svc *Service) mutate(op string, apply func(doc Document) error) error {
	base := svc.doc
	if svc.opts.AutoSync {
		loaded, err := svc.repo.Load()
		switch {
		case err == nil:
			base = loaded.Clone()
		case errors.Is(err, os.ErrNotExist):
			base = Document{}
		default:
			svc.logger.Error(op+": loading gradebook document failed", err)
			return errors.Wrapf(err, "%s: loading gradebook", op)
		}
		svc.doc = base
	}

	next := base.Clone()
	if err := apply(next); err != nil {
		if err == errUnchanged {
			svc.logger.Debug(op + ": nothing to change")
			return nil
		}
		svc.logger.Debug(op+": rejected", err)
		return err
	}

	if svc.opts.AutoSync {
		if err := svc.repo.Persist(next); err != nil {
			svc.logger.Error(op+": persisting gradebook document failed", err)
			return errors.Wrapf(err, "%s: persisting gradebook", op)
		}
	} else {
		svc.dirty = true
	}
	svc.record(op, base)
	svc.doc = next
	svc.logger.Debug(op + ": done")
	return nil
}

// AddClass creates an empty class.
func (svc *Service) AddClass(name string) error {
	nc := NewClass{Name: name}
	if err := nc.Validate(svc.validate); err != nil {
		return err
	}
	return svc.mutate("add class", func(doc Document) error {
		if _, ok := doc[nc.Name]; ok {
			return core.NewValidationError(ErrClassExists, core.FieldError{Field: "class", Error: ErrClassExists.Error()})
		}
		doc[nc.Name] = Class{}
		return nil
	})
}

// AddStudent adds a student holding an ungraded score for every assignment of the class.
// A missing class is created. Adding a student twice is a no-op.
func (svc *Service) AddStudent(class, name string) error {
	ns := NewStudent{Class: class, Name: name}
	if err := ns.Validate(svc.validate); err != nil {
		return err
	}
	return svc.mutate("add student", func(doc Document) error {
		cls, ok := doc[ns.Class]
		if !ok {
			cls = Class{}
			doc[ns.Class] = cls
		}
		if _, ok := cls[ns.Name]; ok {
			return errUnchanged
		}
		rec := make(StudentRecord)
		for _, assignment := range cls.Assignments() {
			rec[assignment] = Score{Value: Ungraded(), MaxPoints: cls.MaxPoints(assignment)}
		}
		cls[ns.Name] = rec
		return nil
	})
}

// AddAssignment adds the assignment to every student of the class, with na.Initial (or ungraded) as value.
func (svc *Service) AddAssignment(na NewAssignment) error {
	if err := na.Validate(svc.validate); err != nil {
		return err
	}
	value := Ungraded()
	if na.Initial != nil {
		value = Graded(*na.Initial)
	}
	return svc.mutate("add assignment", func(doc Document) error {
		cls, ok := doc[na.Class]
		if !ok {
			return notFound(ErrClassNotFound, "class", na.Class, doc.Classes())
		}
		if cls.HasAssignment(na.Name) {
			return core.NewValidationError(ErrAssignmentExists, core.FieldError{Field: "assignment", Error: ErrAssignmentExists.Error()})
		}
		// assignments only exist as student scores
		if len(cls) == 0 {
			return core.NewValidationError(ErrNoStudents, core.FieldError{Field: "class", Error: fmt.Sprintf("class %q has no students", na.Class)})
		}
		for _, rec := range cls {
			score := Score{Value: value}
			if na.MaxPoints != nil {
				score.MaxPoints = Points(*na.MaxPoints)
			}
			rec[na.Name] = score
		}
		return nil
	})
}

// RemoveStudent deletes the student's record.
func (svc *Service) RemoveStudent(class, name string) error {
	ns := NewStudent{Class: class, Name: name}
	if err := ns.Validate(svc.validate); err != nil {
		return err
	}
	return svc.mutate("remove student", func(doc Document) error {
		cls, ok := doc[ns.Class]
		if !ok {
			return notFound(ErrClassNotFound, "class", ns.Class, doc.Classes())
		}
		if _, ok := cls[ns.Name]; !ok {
			return notFound(ErrStudentNotFound, "student", ns.Name, cls.Students())
		}
		delete(cls, ns.Name)
		return nil
	})
}

// RemoveAssignment deletes the assignment from every student of the class holding it.
func (svc *Service) RemoveAssignment(class, name string) error {
	ref := AssignmentRef{Class: class, Name: name}
	if err := ref.Validate(svc.validate); err != nil {
		return err
	}
	return svc.mutate("remove assignment", func(doc Document) error {
		cls, ok := doc[ref.Class]
		if !ok {
			return notFound(ErrClassNotFound, "class", ref.Class, doc.Classes())
		}
		if !cls.HasAssignment(ref.Name) {
			return errUnchanged
		}
		for _, rec := range cls {
			delete(rec, ref.Name)
		}
		return nil
	})
}

// UpdateGrade sets the value of an existing score. Values above max_points are accepted.
func (svc *Service) UpdateGrade(class, student, assignment string, value Grade) error {
	gu := GradeUpdate{Class: class, Student: student, Assignment: assignment}
	if pts, ok := value.Points(); ok {
		gu.Points = &pts
	}
	if err := gu.Validate(svc.validate); err != nil {
		return err
	}
	return svc.mutate("update grade", func(doc Document) error {
		cls, ok := doc[gu.Class]
		if !ok {
			return notFound(ErrClassNotFound, "class", gu.Class, doc.Classes())
		}
		rec, ok := cls[gu.Student]
		if !ok {
			return notFound(ErrStudentNotFound, "student", gu.Student, cls.Students())
		}
		score, ok := rec[gu.Assignment]
		if !ok {
			return notFound(ErrAssignmentNotFound, "assignment", gu.Assignment, cls.Assignments())
		}
		score.Value = value
		rec[gu.Assignment] = score
		return nil
	})
}

// Queries. They read the in-memory state only and never fail: missing data yields empty results.

func (svc *Service) ListClasses() []string {
	return svc.doc.Classes()
}

func (svc *Service) ListStudents(class string) []string {
	return svc.doc[core.CleanString(class)].Students()
}

func (svc *Service) ListAssignments(class string) []string {
	return svc.doc[core.CleanString(class)].Assignments()
}

// Grades returns every student's score for the assignment.
func (svc *Service) Grades(class, assignment string) map[string]Score {
	assignment = core.CleanString(assignment)
	grades := make(map[string]Score)
	for student, rec := range svc.doc[core.CleanString(class)] {
		if score, ok := rec[assignment]; ok {
			grades[student] = score.clone()
		}
	}
	return grades
}

// StudentGrades returns the student's scores keyed by assignment.
func (svc *Service) StudentGrades(class, student string) map[string]Score {
	rec := svc.doc[core.CleanString(class)][core.CleanString(student)]
	return rec.clone()
}

// MaxPoints returns the assignment's cap, if set.
func (svc *Service) MaxPoints(class, assignment string) (int, bool) {
	if pts := svc.doc[core.CleanString(class)].MaxPoints(core.CleanString(assignment)); pts != nil {
		return *pts, true
	}
	return 0, false
}

// ExceedsMaxPoints reports whether value is above the cap of the student's score.
// Callers use it to ask for confirmation before UpdateGrade.
func (svc *Service) ExceedsMaxPoints(class, student, assignment string, value Grade) bool {
	pts, graded := value.Points()
	score, ok := svc.doc[core.CleanString(class)][core.CleanString(student)][core.CleanString(assignment)]
	return graded && ok && score.MaxPoints != nil && pts > *score.MaxPoints
}

// Snapshot returns a copy of the in-memory gradebook.
func (svc *Service) Snapshot() Document {
	return svc.doc.Clone()
}
