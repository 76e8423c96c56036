//go:build !darwin && !linux

package hostinfo

import (
	"errors"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUName returns the processor model name.
func CPUName() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", fmt.Errorf("reading cpu info: %w", err)
	}
	for _, info := range infos {
		if info.ModelName != "" {
			return info.ModelName, nil
		}
	}
	return "", errors.New("no cpu model name")
}

// CPUFrequency returns the processor clock in whole MHz.
func CPUFrequency() (uint64, error) {
	infos, err := cpu.Info()
	if err != nil {
		return 0, fmt.Errorf("reading cpu info: %w", err)
	}
	if len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, errors.New("no cpu frequency")
	}
	return uint64(math.Round(infos[0].Mhz)), nil
}

// CPUCount returns the number of physical cores and hardware threads.
func CPUCount() (cores, threads int, err error) {
	if cores, err = cpu.Counts(false); err != nil {
		return 0, 0, fmt.Errorf("counting cores: %w", err)
	}
	if threads, err = cpu.Counts(true); err != nil {
		return 0, 0, fmt.Errorf("counting threads: %w", err)
	}
	return cores, threads, nil
}
