package hostinfo

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// LocalIP returns the first global unicast IPv4 address of the host.
func LocalIP() (string, error) {
	addrs, err := netlink.AddrList(nil, netlink.FAMILY_V4)
	if err != nil {
		return "", fmt.Errorf("listing addresses: %w", err)
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		if a.IPNet == nil || a.Scope != int(netlink.SCOPE_UNIVERSE) {
			continue
		}
		ips = append(ips, a.IP)
	}
	return firstGlobalIPv4(ips)
}
