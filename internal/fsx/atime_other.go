//go:build !linux

package fsx

import (
	"io/fs"
	"time"
)

// accessTime falls back to the modification time where the platform stat
// layout is not handled.
func accessTime(fi fs.FileInfo) time.Time { return fi.ModTime() }
