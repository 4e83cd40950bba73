package fs

import (
	"os"
	"time"

	"github.com/djherbis/times"
)

// createdAt returns the file's birth time where the platform records one,
// falling back to the modification time.
func createdAt(path string, info os.FileInfo) time.Time {
	ts, err := times.Stat(path)
	if err == nil && ts.HasBirthTime() {
		return ts.BirthTime()
	}
	return info.ModTime()
}
