package jsondb

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

func TestDB_Persist_writeFile(t *testing.T) {
	defer func(f func(string, []byte) error) { writeFileFunc = f }(writeFileFunc)

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{}\n"), filePerm))
	db := Open(path)

	var gotPath string
	var gotData []byte
	errReplace := errors.New("replace failed")
	writeFileFunc = func(path string, data []byte) error {
		gotPath, gotData = path, data
		return errReplace
	}

	err := db.Persist(gradebook.Document{"Math101": gradebook.Class{}})
	assert.ErrorIs(t, err, errReplace)
	assert.Contains(t, err.Error(), "writing "+path)
	assert.Equal(t, path, gotPath)
	assert.Equal(t, "{\n    \"Math101\": {}\n}\n", string(gotData))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("old"), filePerm))

	require.NoError(t, writeFile(path, []byte("new")))
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
