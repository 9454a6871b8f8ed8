package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_planboard._tcp"

// Advertise announces a hosted board on the local network so peers can
// find it without typing the share link. The returned server must be
// shut down by the caller.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // IPs auto-detected
		[]string{"PlanBoard"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks up advertised boards and calls found with each
// "host:port" address discovered. It returns once the query finishes
// and every discovered entry has been forwarded.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		forwardEntries(entries, found)
	}()

	// Lookup never closes the channel it writes to; close it ourselves
	// once the query returns so the forwarding goroutine can exit.
	err := mdns.Lookup(serviceType, entries)
	close(entries)
	<-done
	return err
}

func forwardEntries(entries <-chan *mdns.ServiceEntry, found func(addr string)) {
	for e := range entries {
		if e.AddrV4 == nil || e.Port == 0 {
			continue
		}
		found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
	}
}
