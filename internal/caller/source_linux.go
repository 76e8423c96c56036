package caller

import (
	"fmt"
	"strings"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

const (
	// minArgMax is the floor the kernel applies to the argument space (32 pages).
	minArgMax = 32 * 4096
	// maxArgMax is 3/4 of the kernel's default 8MiB stack limit.
	maxArgMax = 6 << 20

	rlimInfinity = ^uint64(0)
)

// procfsSource lays out /proc/<pid>/exe and /proc/<pid>/cmdline like a
// KERN_PROCARGS blob: executable path, NUL, argv.
type procfsSource struct {
	mountPoint string
}

func defaultSource() ArgsSource {
	return procfsSource{mountPoint: procfs.DefaultMountPoint}
}

func (s procfsSource) MaxArgsSize() (int, error) {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &rlim); err != nil {
		return 0, fmt.Errorf("getrlimit RLIMIT_STACK: %w", err)
	}

	argmax := maxArgMax
	if rlim.Cur != rlimInfinity && rlim.Cur/4 < maxArgMax {
		argmax = int(rlim.Cur / 4)
	}
	if argmax < minArgMax {
		argmax = minArgMax
	}

	// Room for the leading executable path and its terminator.
	return argmax + unix.PathMax + 1, nil
}

func (s procfsSource) FetchArgs(pid int, scratch []byte) (int, error) {
	fs, err := procfs.NewFS(s.mountPoint)
	if err != nil {
		return 0, err
	}

	proc, err := fs.Proc(pid)
	if err != nil {
		return 0, err
	}

	args, err := proc.CmdLine()
	if err != nil {
		return 0, fmt.Errorf("reading cmdline of pid %d: %w", pid, err)
	}

	exe, err := proc.Executable()
	if err != nil || exe == "" {
		// exe is unreadable for other users' processes and kernel threads.
		if exe, err = proc.Comm(); err != nil {
			return 0, fmt.Errorf("reading comm of pid %d: %w", pid, err)
		}
	}

	return writeBlob(scratch, exe, args)
}

// writeBlob lays out exe, NUL, then the NUL-separated args. An empty argv[0]
// is ErrEmptyName.
func writeBlob(scratch []byte, exe string, args []string) (int, error) {
	if len(args) > 0 && args[0] == "" {
		return 0, ErrEmptyName
	}

	n := copy(scratch, exe)
	if n < len(scratch) {
		scratch[n] = 0
		n++
	}
	if len(args) > 0 {
		n += copy(scratch[n:], strings.Join(args, "\x00"))
		if n < len(scratch) {
			scratch[n] = 0
			n++
		}
	}
	return n, nil
}
