package hostinfo

import (
	"github.com/shirou/gopsutil/v4/host"
)

func osName(hi *host.InfoStat) (string, error) {
	if hi.PlatformVersion == "" {
		return "macOS", nil
	}
	return "macOS " + hi.PlatformVersion, nil
}
