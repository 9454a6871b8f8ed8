package net

import (
	"log"
	"net"
)

// OutgoingIP returns the local IPv4 address a peer would use to reach
// this host, for embedding in the share link. It prefers the source
// address of the default route and otherwise scans interfaces for a
// non-loopback IPv4, settling on loopback when the machine has no
// network at all.
func OutgoingIP() (string, error) {
	if conn, err := net.Dial("udp4", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			return addr.IP.String(), nil
		}
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}

	log.Printf("[HOST] no routable IPv4 found, share link will be local only")
	return "127.0.0.1", nil
}
