// Package netif enumerates local network interfaces and their broadcast addresses.
package netif

import (
	"fmt"
	"net"

	"github.com/fgeck/wakeonlan/internal/models"
)

// Service defines the interface for listing local interfaces.
type Service interface {
	List() ([]models.Interface, error)
}

// Impl implements the netif Service interface.
type Impl struct {
	interfaces func() ([]net.Interface, error)
	addrs      func(iface net.Interface) ([]net.Addr, error)
}

// New creates a new interface service backed by the host's interfaces.
func New() *Impl {
	return &Impl{
		interfaces: net.Interfaces,
		addrs: func(iface net.Interface) ([]net.Addr, error) {
			return iface.Addrs()
		},
	}
}

// NewWithInterfaces creates a new interface service with custom lookups (for testing).
func NewWithInterfaces(
	interfaces func() ([]net.Interface, error),
	addrs func(iface net.Interface) ([]net.Addr, error),
) *Impl {
	return &Impl{
		interfaces: interfaces,
		addrs:      addrs,
	}
}

// List returns every local interface with the subnet broadcast address of
// each of its IPv4 networks.
func (s *Impl) List() ([]models.Interface, error) {
	ifaces, err := s.interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	result := make([]models.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := s.addrs(iface)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch addresses for interface %q: %w", iface.Name, err)
		}

		info := models.Interface{
			Name:         iface.Name,
			HardwareAddr: iface.HardwareAddr,
			Up:           iface.Flags&net.FlagUp != 0,
			Broadcast:    iface.Flags&net.FlagBroadcast != 0,
		}
		for _, addr := range addrs {
			info.Addrs = append(info.Addrs, addr.String())

			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if bcast := BroadcastAddr(ipNet); bcast != nil && info.Broadcast {
				info.BroadcastAddrs = append(info.BroadcastAddrs, bcast)
			}
		}
		result = append(result, info)
	}

	return result, nil
}

// BroadcastAddr computes the directed broadcast address of an IPv4 network.
// It returns nil for IPv6 networks, which have no broadcast.
func BroadcastAddr(ipNet *net.IPNet) net.IP {
	ip := ipNet.IP.To4()
	if ip == nil {
		return nil
	}

	mask := ipNet.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	if len(mask) != net.IPv4len {
		return nil
	}

	broadcast := make(net.IP, net.IPv4len)
	for i := range ip {
		broadcast[i] = ip[i] | ^mask[i]
	}
	return broadcast
}
