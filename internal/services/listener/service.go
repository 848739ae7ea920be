// Package listener receives Wake-on-LAN magic packets for diagnostics.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/fgeck/wakeonlan/internal/models"
	"github.com/mdlayher/wol"
	"github.com/rs/zerolog"
	"gopkg.in/tomb.v2"
)

// maxDatagram is large enough for any magic packet, including SecureOn variants.
const maxDatagram = 1500

// Service defines the interface for the magic packet listener.
type Service interface {
	Listen(ctx context.Context, cfg models.ListenConfig) (*models.Reception, error)
}

// Impl implements the listener Service interface.
type Impl struct {
	logger zerolog.Logger
}

// New creates a new listener service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{logger: logger}
}

// Listen binds cfg.Address:cfg.Port and waits for the first magic packet.
func (s *Impl) Listen(ctx context.Context, cfg models.ListenConfig) (*models.Reception, error) {
	addr := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))

	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Info().
		Str("address", conn.LocalAddr().String()).
		Dur("timeout", cfg.Timeout).
		Msg("waiting for magic packet")

	return s.Receive(ctx, conn, cfg.Timeout)
}

// Receive reads from conn until a datagram decodes as a magic packet, the
// timeout expires or ctx is cancelled. Other datagrams are skipped. conn is
// closed before Receive returns.
func (s *Impl) Receive(ctx context.Context, conn net.PacketConn, timeout time.Duration) (*models.Reception, error) {
	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set read deadline: %w", err)
		}
	}

	t, _ := tomb.WithContext(ctx)
	t.Go(func() error {
		<-t.Dying()
		return conn.Close()
	})

	var reception *models.Reception
	t.Go(func() error {
		rec, err := s.read(conn)
		if err != nil {
			return err
		}
		reception = rec
		t.Kill(nil)
		return nil
	})

	err := t.Wait()
	// A packet read before cancellation still counts.
	if reception != nil {
		return reception, nil
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to receive magic packet: %w", err)
	}

	return reception, nil
}

func (s *Impl) read(conn net.PacketConn) (*models.Reception, error) {
	buf := make([]byte, maxDatagram)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			return nil, err
		}

		var p wol.MagicPacket
		if err := p.UnmarshalBinary(buf[:n]); err != nil {
			s.logger.Debug().
				Err(err).
				Str("from", from.String()).
				Int("bytes", n).
				Msg("ignoring datagram")
			continue
		}

		s.logger.Info().
			Str("mac", p.Target.String()).
			Str("from", from.String()).
			Int("bytes", n).
			Msg("magic packet received")

		return &models.Reception{
			Target: append(net.HardwareAddr(nil), p.Target...),
			From:   from,
			Size:   n,
		}, nil
	}
}
