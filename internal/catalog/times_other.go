//go:build !linux && !darwin

package catalog

import (
	"os"
	"time"
)

// createdTime falls back to the modification time on platforms without a
// readable creation time.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
