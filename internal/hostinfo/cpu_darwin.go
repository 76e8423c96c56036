package hostinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CPUName returns the processor brand string.
func CPUName() (string, error) {
	name, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return "", fmt.Errorf("sysctl machdep.cpu.brand_string: %w", err)
	}
	return name, nil
}

// CPUFrequency returns the processor clock in whole MHz. Apple silicon does
// not publish hw.cpufrequency.
func CPUFrequency() (uint64, error) {
	hz, err := unix.SysctlUint64("hw.cpufrequency")
	if err != nil {
		return 0, fmt.Errorf("sysctl hw.cpufrequency: %w", err)
	}
	return hz / 1_000_000, nil
}

// CPUCount returns the number of physical cores and hardware threads.
func CPUCount() (cores, threads int, err error) {
	c, err := sysctlCount("machdep.cpu.core_count", "hw.physicalcpu")
	if err != nil {
		return 0, 0, err
	}
	t, err := sysctlCount("machdep.cpu.thread_count", "hw.logicalcpu")
	if err != nil {
		return 0, 0, err
	}
	return int(c), int(t), nil
}

// sysctlCount returns the first of names the kernel answers.
func sysctlCount(names ...string) (uint32, error) {
	var err error
	for _, name := range names {
		var v uint32
		if v, err = unix.SysctlUint32(name); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("sysctl %v: %w", names, err)
}
