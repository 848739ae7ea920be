package main

import (
	"github.com/fgeck/wakeonlan/internal/config"
	"github.com/fgeck/wakeonlan/internal/services/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var wakeCmd = &cobra.Command{
	Use:   "wake",
	Short: "Send a magic packet",
	Long: `Send a single Wake-on-LAN magic packet to <to>:9.

The MAC address accepts colon, hyphen or dot separated hexadecimal,
e.g. 18:C0:4D:42:2D:EA or 18-C0-4D-42-2D-EA. A failed send is reported and
not retried.`,
	Example: `  wakeonlan wake --mac 18:C0:4D:42:2D:EA
  wakeonlan wake -m 18-C0-4D-42-2D-EA -t 192.168.1.255
  MAC=18:C0:4D:42:2D:EA TO=192.168.1.255 wakeonlan wake`,
	RunE: runWake,
}

func init() {
	wakeCmd.Flags().StringP("mac", "m", "", "MAC address of the device to wake [env: MAC]")
	wakeCmd.Flags().StringP("to", "t", config.DefaultDestination, "destination address [env: TO]")
}

func runWake(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := config.Validate(&cfg.Wake); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	wolSvc := wol.New(log.Logger)
	result, err := wolSvc.Wake(ctx, cfg.Wake)
	if err != nil {
		log.Error().Err(err).Msg("wake failed")
		return err
	}

	log.Debug().
		Str("destination", result.Destination).
		Int("bytes", result.BytesSent).
		Msg("wake completed")
	return nil
}
