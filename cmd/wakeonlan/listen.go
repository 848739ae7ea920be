package main

import (
	"fmt"

	"github.com/fgeck/wakeonlan/internal/services/listener"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Wait for a magic packet and print its target",
	Long: `Bind a UDP socket and wait for the first Wake-on-LAN magic packet.

Useful to check that packets sent with "wakeonlan wake" reach a host on the
same segment. Binding port 9 usually requires elevated privileges.`,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().String("address", "0.0.0.0", "local address to bind")
	listenCmd.Flags().Int("port", 9, "UDP port to listen on")
	listenCmd.Flags().Duration("timeout", 0, "give up after this long (0 waits forever)")
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	listenerSvc := listener.New(log.Logger)
	rec, err := listenerSvc.Listen(ctx, cfg.Listen)
	if err != nil {
		log.Error().Err(err).Msg("listen failed")
		return err
	}

	fmt.Printf("magic packet for %s received from %s (%d bytes)\n", rec.Target, rec.From, rec.Size)
	return nil
}
