package gradebook

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core"
)

var nowFunc = time.Now // mockable

// Change is an applied mutation that Undo can revert.
type Change struct {
	ID uuid.UUID
	Op string
	At time.Time // UTC

	before Document
}

func (svc *Service) record(op string, before Document) {
	if svc.opts.HistoryLimit == 0 {
		return
	}
	svc.history = append(svc.history, Change{
		ID:     uuid.New(),
		Op:     op,
		At:     nowFunc().UTC(),
		before: before,
	})
	if over := len(svc.history) - svc.opts.HistoryLimit; over > 0 {
		svc.history = svc.history[over:]
	}
}

// History lists the changes that can be undone, newest first.
func (svc *Service) History() []Change {
	changes := make([]Change, 0, len(svc.history))
	for i := len(svc.history) - 1; i >= 0; i-- {
		chg := svc.history[i]
		chg.before = nil
		changes = append(changes, chg)
	}
	return changes
}

// Undo restores the gradebook as it was before the last change and returns that change.
// With AutoSync the restored state is persisted, overwriting any external edit made since.
func (svc *Service) Undo() (Change, error) {
	if len(svc.history) == 0 {
		return Change{}, core.NewValidationError(ErrNothingToUndo)
	}
	last := svc.history[len(svc.history)-1]
	prev := last.before.Clone()

	if svc.opts.AutoSync {
		if err := svc.repo.Persist(prev); err != nil {
			svc.logger.Error("undo: persisting gradebook document failed", err)
			return Change{}, errors.Wrap(err, "undo: persisting gradebook")
		}
	} else {
		svc.dirty = true
	}
	svc.history = svc.history[:len(svc.history)-1]
	svc.doc = prev
	svc.logger.Info("undo: reverted "+last.Op, map[string]interface{}{"change": last.ID.String()})

	last.before = nil
	return last, nil
}
