package inmemdb

import (
	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

type gradebookRepository struct {
	db *documentTable
}

var _ gradebook.Repository = (*gradebookRepository)(nil) // interface compliance check

func NewGradebookRepository(db *DB) gradebook.Repository {
	return &gradebookRepository{db: db.gradebook}
}

func (repo *gradebookRepository) Load() (gradebook.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.data == nil {
		return nil, errNoDocument
	}
	return gradebook.Decode(repo.db.data)
}

func (repo *gradebookRepository) Persist(doc gradebook.Document) error {
	data, err := gradebook.Encode(doc)
	if err != nil {
		return err
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.persistErr != nil {
		return repo.db.persistErr
	}
	repo.db.data = data
	return nil
}
