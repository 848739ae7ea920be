package models

import (
	"net"
	"time"
)

// ListenConfig holds the settings of the magic packet listener.
type ListenConfig struct {
	Address string
	Port    int
	Timeout time.Duration // 0 waits until cancelled
}

// Reception describes a magic packet observed by the listener.
type Reception struct {
	Target net.HardwareAddr
	From   net.Addr
	Size   int
}
