// Package hostinfo gathers the host description rinfo prints: CPU, memory,
// motherboard, local IP, hostname, invoking user/shell and operating system.
//
// Each section is read independently and concurrently by Gather. A failed
// section never aborts the others; its error is kept in Info.Errors so the
// output can report it in place.
//
// The CPU queries (CPUName, CPUFrequency, CPUCount) are per-platform:
// /proc/cpuinfo on Linux, sysctl on macOS and gopsutil elsewhere.
package hostinfo
