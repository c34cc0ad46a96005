//go:build darwin

package catalog

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the directory's birth time, falling back to the
// modification time.
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
