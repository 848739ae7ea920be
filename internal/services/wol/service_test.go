package wol

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/fgeck/wakeonlan/internal/magic"
	"github.com/fgeck/wakeonlan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	sendFunc func(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error
	calls    int
}

func (m *mockSender) Send(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error {
	m.calls++
	if m.sendFunc != nil {
		return m.sendFunc(ctx, packet, dst)
	}
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestWake_Success(t *testing.T) {
	var capturedPacket magic.Packet
	var capturedDst *net.UDPAddr

	sender := &mockSender{
		sendFunc: func(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error {
			capturedPacket = packet
			capturedDst = dst
			return nil
		},
	}

	svc := NewWithSender(testLogger(), sender)

	mac, _ := net.ParseMAC("18:C0:4D:42:2D:EA")
	cfg := models.WakeConfig{
		MACAddress:  mac,
		Destination: net.ParseIP("192.168.1.255"),
	}

	result, err := svc.Wake(context.Background(), cfg)

	require.NoError(t, err)
	assert.True(t, result.PacketSent)
	assert.Equal(t, 102, result.BytesSent)
	assert.Equal(t, "192.168.1.255:9", result.Destination)
	assert.Equal(t, 1, sender.calls)

	want := magic.Build(magic.HardwareAddr{0x18, 0xC0, 0x4D, 0x42, 0x2D, 0xEA})
	assert.Equal(t, want, capturedPacket)
	require.NotNil(t, capturedDst)
	assert.Equal(t, 9, capturedDst.Port)
	assert.True(t, capturedDst.IP.Equal(net.ParseIP("192.168.1.255")))
}

func TestWake_DefaultBroadcast(t *testing.T) {
	var capturedDst *net.UDPAddr
	sender := &mockSender{
		sendFunc: func(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error {
			capturedDst = dst
			return nil
		},
	}

	svc := NewWithSender(testLogger(), sender)

	cfg := models.WakeConfig{
		MACAddress:  net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		Destination: net.IPv4bcast,
	}

	result, err := svc.Wake(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "255.255.255.255:9", result.Destination)
	assert.Equal(t, "255.255.255.255:9", capturedDst.String())
}

func TestWake_InvalidMAC(t *testing.T) {
	sender := &mockSender{}
	svc := NewWithSender(testLogger(), sender)

	cfg := models.WakeConfig{
		MACAddress:  net.HardwareAddr{0x02, 0x00, 0x5e, 0x10, 0x00, 0x00, 0x00, 0x01},
		Destination: net.IPv4bcast,
	}

	result, err := svc.Wake(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MAC address")
	assert.False(t, result.PacketSent)
	assert.Equal(t, 0, sender.calls)
}

func TestWake_MissingDestination(t *testing.T) {
	sender := &mockSender{}
	svc := NewWithSender(testLogger(), sender)

	cfg := models.WakeConfig{
		MACAddress: net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
	}

	_, err := svc.Wake(context.Background(), cfg)

	require.Error(t, err)
	assert.Equal(t, 0, sender.calls)
}

func TestWake_SendFailed(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error {
			return errors.Join(ErrTransport, errors.New("network is unreachable"))
		},
	}

	svc := NewWithSender(testLogger(), sender)

	cfg := models.WakeConfig{
		MACAddress:  net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		Destination: net.ParseIP("10.0.0.255"),
	}

	result, err := svc.Wake(context.Background(), cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "network is unreachable")
	assert.False(t, result.PacketSent)
	assert.Equal(t, 0, result.BytesSent)
	// Exactly one attempt, no retries.
	assert.Equal(t, 1, sender.calls)
}

func TestWake_ShortSendIsFailure(t *testing.T) {
	fake := &fakeConn{
		writeFunc: func(b []byte, addr net.Addr) (int, error) {
			return len(b) - 1, nil
		},
	}
	tr := NewTransmitterWithSocket(fake.listen, noBroadcast)
	svc := NewWithSender(testLogger(), tr)

	cfg := models.WakeConfig{
		MACAddress:  net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		Destination: net.IPv4bcast,
	}

	result, err := svc.Wake(context.Background(), cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShortSend)
	assert.False(t, result.PacketSent)
}
