//go:build !darwin && !linux

package timesync

import (
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

func systemBootTime() (time.Time, error) {
	secs, err := host.BootTime()
	if err != nil {
		return time.Time{}, err
	}
	//nolint:gosec // boot time is seconds since the epoch
	return time.Unix(int64(secs), 0), nil
}
