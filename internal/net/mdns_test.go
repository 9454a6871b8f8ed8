package net

import (
	"net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
)

func TestForwardEntriesFormatsAddresses(t *testing.T) {
	entries := make(chan *mdns.ServiceEntry, 4)
	entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(192, 168, 1, 7), Port: 8899}
	entries <- &mdns.ServiceEntry{AddrV4: nil, Port: 8899} // no address resolved
	entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 2)} // no port
	entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 3), Port: 9000}
	close(entries)

	var got []string
	forwardEntries(entries, func(addr string) { got = append(got, addr) })

	// forwardEntries returned, so closing the channel is enough to stop
	// the goroutine Browse spawns.
	assert.Equal(t, []string{"192.168.1.7:8899", "10.0.0.3:9000"}, got)
}
