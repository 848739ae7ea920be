//go:build unix

package wol

import (
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestEnableBroadcast_SetsSocketOption(t *testing.T) {
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	require.NoError(t, enableBroadcast(conn))

	raw, err := conn.(syscall.Conn).SyscallConn()
	require.NoError(t, err)

	var value int
	var getErr error
	require.NoError(t, raw.Control(func(fd uintptr) {
		value, getErr = unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST)
	}))
	require.NoError(t, getErr)
	assert.NotZero(t, value)
}
