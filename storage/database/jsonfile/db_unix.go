//go:build !windows
// +build !windows

package jsondb

import "github.com/google/renameio/v2"

func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, filePerm)
}
