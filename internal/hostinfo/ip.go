package hostinfo

import (
	"errors"
	"net"
)

// ErrNoAddress is returned when the host has no usable IPv4 address.
var ErrNoAddress = errors.New("no global unicast IPv4 address")

func firstGlobalIPv4(ips []net.IP) (string, error) {
	for _, ip := range ips {
		v4 := ip.To4()
		if v4 == nil || v4.IsLoopback() || !v4.IsGlobalUnicast() {
			continue
		}
		return v4.String(), nil
	}
	return "", ErrNoAddress
}
