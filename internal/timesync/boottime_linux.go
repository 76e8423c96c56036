package timesync

import (
	"fmt"
	"time"

	"github.com/prometheus/procfs"
)

func systemBootTime() (time.Time, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return time.Time{}, err
	}

	stat, err := fs.Stat()
	if err != nil {
		return time.Time{}, fmt.Errorf("reading /proc/stat: %w", err)
	}
	if stat.BootTime == 0 {
		return time.Time{}, fmt.Errorf("btime not found in /proc/stat")
	}

	//nolint:gosec // btime is seconds since the epoch
	return time.Unix(int64(stat.BootTime), 0), nil
}
