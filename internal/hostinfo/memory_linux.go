package hostinfo

import (
	"errors"
	"fmt"

	"github.com/prometheus/procfs"
)

// ReadMemory reads the memory section from /proc/meminfo.
func ReadMemory() (*Memory, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}
	mi, err := fs.Meminfo()
	if err != nil {
		return nil, fmt.Errorf("reading /proc/meminfo: %w", err)
	}
	return memoryFromMeminfo(mi)
}

func memoryFromMeminfo(mi procfs.Meminfo) (*Memory, error) {
	if mi.MemTotal == nil {
		return nil, errors.New("no MemTotal in /proc/meminfo")
	}
	total := *mi.MemTotal * 1024

	// Kernels before 3.14 have no MemAvailable.
	var avail uint64
	switch {
	case mi.MemAvailable != nil:
		avail = *mi.MemAvailable * 1024
	case mi.MemFree != nil:
		avail = *mi.MemFree * 1024
		if mi.Buffers != nil {
			avail += *mi.Buffers * 1024
		}
		if mi.Cached != nil {
			avail += *mi.Cached * 1024
		}
	}
	avail = min(avail, total)

	return &Memory{Total: total, Available: avail, Used: total - avail}, nil
}
