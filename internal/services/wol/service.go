// Package wol provides Wake-on-LAN operations.
package wol

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/fgeck/wakeonlan/internal/magic"
	"github.com/fgeck/wakeonlan/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for Wake-on-LAN operations.
type Service interface {
	Wake(ctx context.Context, cfg models.WakeConfig) (*models.WOLResult, error)
}

// Sender sends a built magic packet. Transmitter is the default implementation.
type Sender interface {
	Send(ctx context.Context, packet magic.Packet, dst *net.UDPAddr) error
}

// Impl implements the WOL Service interface.
type Impl struct {
	sender Sender
	logger zerolog.Logger
}

// New creates a new WOL service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		sender: NewTransmitter(),
		logger: logger,
	}
}

// NewWithSender creates a new WOL service with a custom sender (for testing).
func NewWithSender(logger zerolog.Logger, sender Sender) *Impl {
	return &Impl{
		sender: sender,
		logger: logger,
	}
}

// Wake builds the magic packet for cfg.MACAddress and sends it once to
// cfg.Destination on the WOL port. A failed send is returned as is; retrying
// is left to the caller.
func (s *Impl) Wake(ctx context.Context, cfg models.WakeConfig) (*models.WOLResult, error) {
	result := &models.WOLResult{}
	start := time.Now()

	addr, err := magic.FromNet(cfg.MACAddress)
	if err != nil {
		return result, fmt.Errorf("invalid MAC address: %w", err)
	}
	if cfg.Destination == nil {
		return result, fmt.Errorf("destination address is required")
	}

	dst := &net.UDPAddr{IP: cfg.Destination, Port: magic.Port}
	result.Destination = dst.String()
	packet := magic.Build(addr)

	s.logger.Info().
		Str("mac", addr.String()).
		Str("destination", result.Destination).
		Msg("sending WOL packet")

	if err := s.sender.Send(ctx, packet, dst); err != nil {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("failed to send WOL packet to %s: %w", dst, err)
	}

	result.PacketSent = true
	result.BytesSent = len(packet)
	result.Duration = time.Since(start)

	s.logger.Info().
		Int("bytes", result.BytesSent).
		Dur("duration", result.Duration).
		Msg("WOL packet sent successfully")

	return result, nil
}
