package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
	logsvc "github.com/DrFaustest/Basic-grade-book/services/logger"
	inmemdb "github.com/DrFaustest/Basic-grade-book/storage/database/inmem"
)

// NewService returns a service over an in-memory store holding doc (no document if doc is empty).
// The service is already loaded.
func NewService(t *testing.T, doc string, opts gradebook.Options) (*gradebook.Service, *inmemdb.DB) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	if doc != "" {
		db.SetRaw([]byte(doc))
	}
	svc := gradebook.NewService(inmemdb.NewGradebookRepository(db), logsvc.NewDiscardLogger(), opts)
	if err := svc.Reload(); err != nil && doc != "" {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc, db
}

// AutoSync are the default service options.
var AutoSync = gradebook.Options{AutoSync: true, HistoryLimit: 20}

// WriteFile writes content to name in a temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	return data
}
