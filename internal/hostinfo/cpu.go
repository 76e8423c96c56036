package hostinfo

import (
	"fmt"

	"github.com/mrzor/rinfo/internal/log"
	"github.com/mrzor/rinfo/internal/timesync"
)

// ReadCPU reads the CPU section. Name and core counts are required; a
// missing clock or uptime is logged and left zero.
func ReadCPU() (*CPU, error) {
	name, err := CPUName()
	if err != nil {
		return nil, fmt.Errorf("reading cpu name: %w", err)
	}

	cores, threads, err := CPUCount()
	if err != nil {
		return nil, fmt.Errorf("counting cpus: %w", err)
	}

	cpu := &CPU{Name: name, Cores: cores, Threads: threads}

	if cpu.ClockMHz, err = CPUFrequency(); err != nil {
		log.WithError(err).Debug("cpu frequency unavailable")
	}
	if cpu.Uptime, err = timesync.Uptime(); err != nil {
		log.WithError(err).Debug("uptime unavailable")
	}
	return cpu, nil
}
