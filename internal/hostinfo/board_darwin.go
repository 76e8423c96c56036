package hostinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ReadMotherboard returns the hardware model identifier.
func ReadMotherboard() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", fmt.Errorf("sysctl hw.model: %w", err)
	}
	return model, nil
}
