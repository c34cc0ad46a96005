//go:build linux

package catalog

import (
	"os"
	"syscall"
	"time"
)

// createdTime approximates the directory's creation time. Linux has no
// portable birth time through os.FileInfo, so the inode change time is
// used, falling back to the modification time.
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
