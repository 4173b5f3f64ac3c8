//go:build windows
// +build windows

package jsondb

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// writeFile stages data in a temporary file next to path, then replaces path with MoveFileEx.
func writeFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
