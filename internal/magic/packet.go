// Package magic builds Wake-on-LAN magic packets.
package magic

import (
	"fmt"
	"net"
)

// Protocol constants of the magic packet format.
const (
	HeaderLen = 6                          // synchronization stream of 0xFF bytes
	AddrLen   = 6                          // EUI-48 hardware address
	Repeat    = 16                         // copies of the address after the header
	Size      = HeaderLen + AddrLen*Repeat // 102 bytes
	Port      = 9                          // discard port
)

// HardwareAddr is a 48-bit hardware address of the device to wake.
type HardwareAddr [AddrLen]byte

// ParseHardwareAddr parses colon or hyphen separated hexadecimal text into
// a 48-bit hardware address. Longer formats such as EUI-64 are rejected.
func ParseHardwareAddr(s string) (HardwareAddr, error) {
	mac, err := net.ParseMAC(s)
	if err != nil {
		return HardwareAddr{}, fmt.Errorf("invalid MAC address %q: %w", s, err)
	}
	return FromNet(mac)
}

// FromNet converts a net.HardwareAddr, which must be exactly 6 bytes long.
func FromNet(mac net.HardwareAddr) (HardwareAddr, error) {
	var a HardwareAddr
	if len(mac) != AddrLen {
		return a, fmt.Errorf("MAC address must be %d bytes, got %d", AddrLen, len(mac))
	}
	copy(a[:], mac)
	return a, nil
}

// String returns the address in lower case colon separated form.
func (a HardwareAddr) String() string {
	return net.HardwareAddr(a[:]).String()
}

// Packet is a magic packet payload.
type Packet []byte

// Build returns the magic packet for addr: six 0xFF bytes followed by addr
// repeated sixteen times.
func Build(addr HardwareAddr) Packet {
	p := make(Packet, 0, Size)
	for i := 0; i < HeaderLen; i++ {
		p = append(p, 0xFF)
	}
	for i := 0; i < Repeat; i++ {
		p = append(p, addr[:]...)
	}
	return p
}
