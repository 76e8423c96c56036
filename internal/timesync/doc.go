// Package timesync provides the system boot time and uptime.
//
// The boot time is read once per Converter: from /proc/stat (btime) on
// Linux, from the kern.boottime sysctl on macOS, and through gopsutil
// everywhere else. Uptime is measured against the wall clock.
package timesync
