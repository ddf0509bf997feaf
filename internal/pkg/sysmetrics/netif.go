package sysmetrics

import (
	"fmt"
	"net"
)

// InterfaceRecord is one IPv4 address assignment on a non-loopback
// interface, with address and netmask rendered dotted-decimal.
type InterfaceRecord struct {
	Name    string
	Addr    string
	Netmask string
}

// ifaceEntry decouples record building from the live interface list so the
// filtering policy is testable with synthetic input.
type ifaceEntry struct {
	name  string
	flags net.Flags
	addrs []net.Addr
}

// Interfaces lists IPv4 addresses on non-loopback interfaces, one record
// per address, in the order the host reports them. Only failure to obtain
// the interface list itself is an error; individual entries that cannot be
// read or rendered are skipped so the rest still get reported.
func Interfaces() ([]InterfaceRecord, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: listing network interfaces: %v", ErrUnavailable, err)
	}
	entries := make([]ifaceEntry, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			// Interface vanished mid-walk; report the rest.
			continue
		}
		entries = append(entries, ifaceEntry{name: iface.Name, flags: iface.Flags, addrs: addrs})
	}
	return interfaceRecords(entries), nil
}

// interfaceRecords applies the filtering policy: loopback interfaces are
// skipped by flag rather than by name, and only IPv4 assignments with a
// renderable four-byte netmask survive.
func interfaceRecords(entries []ifaceEntry) []InterfaceRecord {
	var records []InterfaceRecord
	for _, e := range entries {
		if e.flags&net.FlagLoopback != 0 {
			continue
		}
		for _, addr := range e.addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipnet.IP.To4()
			if ip4 == nil {
				continue
			}
			mask := ipnet.Mask
			if len(mask) == net.IPv6len {
				mask = mask[12:]
			}
			if len(mask) != net.IPv4len {
				continue
			}
			records = append(records, InterfaceRecord{
				Name:    e.name,
				Addr:    ip4.String(),
				Netmask: net.IP(mask).String(),
			})
		}
	}
	return records
}
