//go:build !linux

package hostinfo

import (
	"fmt"
	"net"
)

// LocalIP returns the first global unicast IPv4 address of the host.
func LocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("listing addresses: %w", err)
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		if n, ok := a.(*net.IPNet); ok {
			ips = append(ips, n.IP)
		}
	}
	return firstGlobalIPv4(ips)
}
