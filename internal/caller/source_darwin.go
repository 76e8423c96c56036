package caller

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// sysctlSource reads argument blobs with the KERN_PROCARGS sysctl. The
// kernel returns the saved exec path, NUL padding, then argv and the
// environment.
type sysctlSource struct{}

func defaultSource() ArgsSource {
	return sysctlSource{}
}

func (sysctlSource) MaxArgsSize() (int, error) {
	argmax, err := unix.SysctlUint32("kern.argmax")
	if err != nil {
		return 0, fmt.Errorf("sysctl kern.argmax: %w", err)
	}
	return int(argmax), nil
}

func (sysctlSource) FetchArgs(pid int, scratch []byte) (int, error) {
	raw, err := unix.SysctlRaw("kern.procargs", pid)
	if err != nil {
		return 0, fmt.Errorf("sysctl kern.procargs.%d: %w", pid, err)
	}
	return copy(scratch, raw), nil
}
