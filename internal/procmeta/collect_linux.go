package procmeta

import (
	"fmt"

	"github.com/prometheus/procfs"
)

func readProcess(pid int) (args, environ []string, err error) {
	return readProcessFrom(procfs.DefaultMountPoint, pid)
}

func readProcessFrom(mountPoint string, pid int) (args, environ []string, err error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, nil, err
	}

	p, err := fs.Proc(pid)
	if err != nil {
		return nil, nil, fmt.Errorf("opening process %d: %w", pid, err)
	}

	args, err = p.CmdLine()
	if err != nil {
		return nil, nil, fmt.Errorf("reading cmdline: %w", err)
	}

	environ, envErr := p.Environ()
	if envErr != nil {
		// Other users' processes hide their environment.
		return args, nil, fmt.Errorf("reading environ: %w", envErr)
	}
	return args, environ, nil
}
