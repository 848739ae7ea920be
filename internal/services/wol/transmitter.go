package wol

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"github.com/fgeck/wakeonlan/internal/magic"
)

// ListenFunc opens a datagram socket, like net.ListenConfig.ListenPacket.
type ListenFunc func(ctx context.Context, network, address string) (net.PacketConn, error)

// Transmitter sends magic packets. Every Send opens its own socket and
// closes it before returning, so a Transmitter is safe for concurrent use.
type Transmitter struct {
	listen    ListenFunc
	broadcast func(conn net.PacketConn) error
}

// NewTransmitter creates a Transmitter backed by UDP sockets.
func NewTransmitter() *Transmitter {
	var lc net.ListenConfig
	return &Transmitter{
		listen:    lc.ListenPacket,
		broadcast: enableBroadcast,
	}
}

// NewTransmitterWithSocket creates a Transmitter with custom socket functions (for testing).
func NewTransmitterWithSocket(listen ListenFunc, broadcast func(conn net.PacketConn) error) *Transmitter {
	return &Transmitter{
		listen:    listen,
		broadcast: broadcast,
	}
}

// Send transmits packet to dst as a single datagram. It succeeds only if
// the transport accepted every byte. A deadline on ctx bounds the write.
func (t *Transmitter) Send(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error {
	network, laddr := localAddr(dst)

	conn, err := t.listen(ctx, network, laddr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSocketSetup, err)
	}
	defer func() { _ = conn.Close() }()

	if err := t.broadcast(conn); err != nil {
		return fmt.Errorf("%w: %w", ErrBroadcastPermission, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("%w: setting write deadline: %w", ErrSocketSetup, err)
		}
	}

	n, err := conn.WriteTo(packet, dst)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if n != len(packet) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortSend, n, len(packet))
	}

	return nil
}

// localAddr picks an unspecified local address of the destination's family.
func localAddr(dst *net.UDPAddr) (network, address string) {
	if dst.IP.To4() != nil {
		return "udp4", "0.0.0.0:0"
	}
	return "udp6", "[::]:0"
}

// enableBroadcast sets SO_BROADCAST on the socket behind conn.
func enableBroadcast(conn net.PacketConn) error {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return fmt.Errorf("%T does not expose a raw socket", conn)
	}

	raw, err := sc.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	if err := raw.Control(func(fd uintptr) {
		sockErr = setBroadcast(fd)
	}); err != nil {
		return err
	}

	return sockErr
}
