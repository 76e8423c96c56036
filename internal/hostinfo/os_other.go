//go:build !darwin && !linux

package hostinfo

import (
	"errors"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

func osName(hi *host.InfoStat) (string, error) {
	name := strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
	if name == "" {
		name = hi.OS
	}
	if name == "" {
		return "", errors.New("unknown operating system")
	}
	return name, nil
}
