package models

import (
	"net"
	"time"
)

// WakeConfig holds the target of a Wake-on-LAN request.
type WakeConfig struct {
	MACAddress  net.HardwareAddr
	Destination net.IP // broadcast or unicast address, port is always 9
}

// WOLResult holds the result of a Wake-on-LAN operation.
type WOLResult struct {
	PacketSent  bool
	BytesSent   int
	Destination string
	Duration    time.Duration
}
