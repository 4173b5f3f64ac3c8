package inmemdb

import (
	"os"
	"sync"
)

type (
	// DB keeps the gradebook document in memory, encoded exactly as it would be on disk.
	DB struct {
		gradebook *documentTable
	}

	documentTable struct {
		sync.RWMutex
		data       []byte // nil when no document exists
		persistErr error
	}
)

func Open() (*DB, error) {
	db := &DB{
		gradebook: &documentTable{},
	}
	return db, nil
}

// Raw returns a copy of the stored document bytes, or nil when none exists.
func (db *DB) Raw() []byte {
	db.gradebook.RLock()
	defer db.gradebook.RUnlock()
	return copyBytes(db.gradebook.data)
}

// SetRaw replaces the stored bytes as an external writer would, eg. with a malformed document.
// A nil data removes the document.
func (db *DB) SetRaw(data []byte) {
	db.gradebook.Lock()
	defer db.gradebook.Unlock()
	db.gradebook.data = copyBytes(data)
}

// FailPersist makes every following Persist fail with err, until called with nil.
func (db *DB) FailPersist(err error) {
	db.gradebook.Lock()
	defer db.gradebook.Unlock()
	db.gradebook.persistErr = err
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var errNoDocument = &os.PathError{Op: "open", Path: "inmem", Err: os.ErrNotExist}
