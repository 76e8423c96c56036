package hostinfo

import (
	"fmt"
	"strings"

	"github.com/prometheus/procfs/sysfs"
)

// ReadMotherboard returns "<vendor> <board>" from the DMI tables.
func ReadMotherboard() (string, error) {
	return motherboardFrom(sysfs.DefaultMountPoint)
}

func motherboardFrom(mountPoint string) (string, error) {
	fs, err := sysfs.NewFS(mountPoint)
	if err != nil {
		return "", err
	}
	dmi, err := fs.DMIClass()
	if err != nil {
		return "", fmt.Errorf("reading dmi: %w", err)
	}

	var parts []string
	for _, s := range []*string{dmi.BoardVendor, dmi.BoardName} {
		if s != nil && strings.TrimSpace(*s) != "" {
			parts = append(parts, strings.TrimSpace(*s))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no board vendor or name in dmi: %w", ErrUnsupported)
	}
	return strings.Join(parts, " "), nil
}
