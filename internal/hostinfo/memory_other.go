//go:build !linux

package hostinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// ReadMemory reads the memory section.
func ReadMemory() (*Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("reading virtual memory: %w", err)
	}
	return &Memory{Total: vm.Total, Available: vm.Available, Used: vm.Total - min(vm.Available, vm.Total)}, nil
}
