package jsondb

import (
	"os"

	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

const filePerm = 0o644

// writeFileFunc atomically replaces path with data; see writeFile in the per-OS files.
var writeFileFunc = writeFile // mockable

// DB is a gradebook.Repository storing the document as one JSON file.
type DB struct {
	path string
}

var _ gradebook.Repository = (*DB)(nil)

func Open(path string) *DB {
	return &DB{path: path}
}

func (db *DB) Path() string { return db.path }

// Load reads and parses the whole file. A missing file yields an error wrapping os.ErrNotExist.
func (db *DB) Load() (gradebook.Document, error) {
	data, err := os.ReadFile(db.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", db.path)
	}
	doc, err := gradebook.Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, db.path)
	}
	return doc, nil
}

// Persist encodes the whole document in memory, then atomically replaces the file
// (write to a temporary file in the same directory, fsync, rename over the target).
// Readers see either the previous document or the new one.
func (db *DB) Persist(doc gradebook.Document) error {
	data, err := gradebook.Encode(doc)
	if err != nil {
		return err
	}
	if err := writeFileFunc(db.path, data); err != nil {
		return errors.Wrapf(err, "writing %s", db.path)
	}
	return nil
}
