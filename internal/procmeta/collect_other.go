//go:build !linux

package procmeta

import "errors"

var errNoProcfs = errors.New("process arguments and environment need procfs")

func readProcess(int) (args, environ []string, err error) {
	return nil, nil, errNoProcfs
}
