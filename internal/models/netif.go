package models

import "net"

// Interface describes a local network interface and the broadcast
// addresses of its IPv4 networks.
type Interface struct {
	Name           string
	HardwareAddr   net.HardwareAddr
	Up             bool
	Broadcast      bool
	Addrs          []string
	BroadcastAddrs []net.IP
}
