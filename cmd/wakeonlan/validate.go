package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/fgeck/wakeonlan/internal/config"
	"github.com/fgeck/wakeonlan/internal/magic"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration without sending",
	Long:  `Resolve flags, environment and the config file and print the wake target without sending a packet.`,
	RunE:  validateConfig,
}

func init() {
	validateCmd.Flags().StringP("mac", "m", "", "MAC address of the device to wake [env: MAC]")
	validateCmd.Flags().StringP("to", "t", config.DefaultDestination, "destination address [env: TO]")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := config.Validate(&cfg.Wake); err != nil {
		log.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	// Print configuration summary
	fmt.Println("Configuration is valid!")
	fmt.Println()
	fmt.Println("Wake target:")
	fmt.Printf("  MAC Address: %s\n", cfg.Wake.MACAddress)
	fmt.Printf("  Destination: %s\n", net.JoinHostPort(cfg.Wake.Destination.String(), strconv.Itoa(magic.Port)))
	fmt.Printf("  Packet size: %d bytes\n", magic.Size)
	fmt.Println()
	fmt.Println("Listener:")
	fmt.Printf("  Address: %s\n", net.JoinHostPort(cfg.Listen.Address, strconv.Itoa(cfg.Listen.Port)))
	if cfg.Listen.Timeout > 0 {
		fmt.Printf("  Timeout: %s\n", cfg.Listen.Timeout)
	}

	return nil
}
