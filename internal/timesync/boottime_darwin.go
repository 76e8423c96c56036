package timesync

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func systemBootTime() (time.Time, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return time.Time{}, fmt.Errorf("sysctl kern.boottime: %w", err)
	}
	return time.Unix(tv.Unix()), nil
}
