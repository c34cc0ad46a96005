// Package fileops holds the filesystem mutations spark performs outside
// the interactive session's read path.
package fileops

import (
	"os"
	"path/filepath"
)

// accessMarker is touched inside a project to bump the directory's
// modification time, which feeds the access-recency ranking term.
const accessMarker = ".spark_access"

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// RemoveProject permanently deletes a project directory. Only called
// after the user has explicitly confirmed.
func RemoveProject(path string) error {
	return os.RemoveAll(path)
}

// TouchAccess records that a project was just used.
func TouchAccess(projectPath string) error {
	return os.WriteFile(filepath.Join(projectPath, accessMarker), nil, 0644)
}
