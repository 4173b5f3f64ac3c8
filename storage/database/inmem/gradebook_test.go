package inmemdb

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

func TestGradebookRepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewGradebookRepository(db)

	_, err = repo.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, db.Raw())

	doc := gradebook.Document{"Math101": gradebook.Class{"Ann": gradebook.StudentRecord{
		"HW1": {Value: gradebook.Graded(90), MaxPoints: gradebook.Points(100)},
	}}}
	require.NoError(t, repo.Persist(doc))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	want, err := gradebook.Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, want, db.Raw())

	// Raw hands out copies
	raw := db.Raw()
	raw[0] = 'x'
	assert.Equal(t, want, db.Raw())
}

func TestGradebookRepository_failures(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewGradebookRepository(db)

	db.SetRaw([]byte(`{"Math101": [`))
	_, err = repo.Load()
	assert.ErrorIs(t, err, gradebook.ErrMalformedDocument)

	errDiskFull := errors.New("disk full")
	db.FailPersist(errDiskFull)
	assert.Equal(t, errDiskFull, repo.Persist(gradebook.Document{}))
	assert.Equal(t, []byte(`{"Math101": [`), db.Raw())

	db.FailPersist(nil)
	require.NoError(t, repo.Persist(gradebook.Document{}))
	assert.Equal(t, []byte("{}\n"), db.Raw())

	db.SetRaw(nil)
	_, err = repo.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
