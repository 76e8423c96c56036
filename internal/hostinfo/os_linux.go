package hostinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/host"
)

func osName(*host.InfoStat) (string, error) {
	return releaseName("/")
}

// releaseName reads the distribution name below root from os-release,
// falling back to lsb-release.
func releaseName(root string) (string, error) {
	sources := []struct{ path, key string }{
		{"etc/os-release", "NAME"},
		{"usr/lib/os-release", "NAME"},
		{"etc/lsb-release", "DISTRIB_DESCRIPTION"},
	}

	var errs []error
	for _, src := range sources {
		path := filepath.Join(root, src.path)
		f, err := os.Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		name, ok := releaseValue(f, src.key)
		f.Close()
		if ok {
			return name, nil
		}
		errs = append(errs, fmt.Errorf("no %s in %s", src.key, path))
	}
	return "", fmt.Errorf("reading distribution name: %w", errors.Join(errs...))
}
