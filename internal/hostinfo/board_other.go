//go:build !darwin && !linux

package hostinfo

// ReadMotherboard is not available on this platform.
func ReadMotherboard() (string, error) {
	return "", ErrUnsupported
}
