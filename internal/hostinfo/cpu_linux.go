package hostinfo

import (
	"errors"
	"fmt"
	"math"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"
)

func cpuInfo() ([]procfs.CPUInfo, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}
	infos, err := fs.CPUInfo()
	if err != nil {
		return nil, fmt.Errorf("reading /proc/cpuinfo: %w", err)
	}
	if len(infos) == 0 {
		return nil, errors.New("no processors in /proc/cpuinfo")
	}
	return infos, nil
}

// CPUName returns the processor model name.
func CPUName() (string, error) {
	infos, err := cpuInfo()
	if err != nil {
		return "", err
	}
	for _, info := range infos {
		if info.ModelName != "" {
			return info.ModelName, nil
		}
	}
	return "", errors.New("no 'model name' in /proc/cpuinfo")
}

// CPUFrequency returns the processor clock in whole MHz.
func CPUFrequency() (uint64, error) {
	infos, err := cpuInfo()
	if err != nil {
		return 0, err
	}
	if mhz := infos[0].CPUMHz; mhz > 0 {
		return uint64(math.Round(mhz)), nil
	}
	return cpufreqMHz(sysfs.DefaultMountPoint)
}

// cpufreqMHz reads the clock from the cpufreq driver, for kernels whose
// cpuinfo carries no "cpu MHz" line (arm64).
func cpufreqMHz(mountPoint string) (uint64, error) {
	fs, err := sysfs.NewFS(mountPoint)
	if err != nil {
		return 0, err
	}
	stats, err := fs.SystemCpufreq()
	if err != nil {
		return 0, fmt.Errorf("reading cpufreq: %w", err)
	}
	for _, s := range stats {
		for _, khz := range []*uint64{s.CpuinfoMaximumFrequency, s.ScalingMaximumFrequency, s.CpuinfoCurrentFrequency} {
			if khz != nil && *khz > 0 {
				return *khz / 1000, nil
			}
		}
	}
	return 0, errors.New("no cpufreq data")
}

// CPUCount returns the number of physical cores and hardware threads.
func CPUCount() (cores, threads int, err error) {
	infos, err := cpuInfo()
	if err != nil {
		return 0, 0, err
	}
	cores, threads = countCores(infos)
	return cores, threads, nil
}

// countCores counts unique (physical id, core id) pairs. Kernels that omit
// core ids get one core per processor.
func countCores(infos []procfs.CPUInfo) (cores, threads int) {
	type coreKey struct{ socket, core string }
	seen := make(map[coreKey]struct{}, len(infos))
	for _, info := range infos {
		if info.CoreID == "" {
			continue
		}
		seen[coreKey{info.PhysicalID, info.CoreID}] = struct{}{}
	}

	threads = len(infos)
	cores = len(seen)
	if cores == 0 {
		cores = threads
	}
	return cores, threads
}
