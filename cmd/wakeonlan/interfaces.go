package main

import (
	"fmt"

	"github.com/fgeck/wakeonlan/internal/services/netif"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List local interfaces and their broadcast addresses",
	Long:  `List the local network interfaces with the subnet broadcast address of each IPv4 network, as candidates for --to.`,
	RunE:  listInterfaces,
}

func listInterfaces(cmd *cobra.Command, args []string) error {
	ifaces, err := netif.New().List()
	if err != nil {
		log.Error().Err(err).Msg("failed to list interfaces")
		return err
	}

	longestName := 0
	for _, iface := range ifaces {
		if len(iface.Name) > longestName {
			longestName = len(iface.Name)
		}
	}

	for _, iface := range ifaces {
		state := "down"
		if iface.Up {
			state = "up"
		}
		fmt.Printf("%-*s %-4s", longestName, iface.Name, state)
		if len(iface.HardwareAddr) > 0 {
			fmt.Printf(" [%s]", iface.HardwareAddr)
		}
		fmt.Println()
		for _, addr := range iface.Addrs {
			fmt.Printf("  addr:      %s\n", addr)
		}
		for _, bcast := range iface.BroadcastAddrs {
			fmt.Printf("  broadcast: %s\n", bcast)
		}
		fmt.Println()
	}

	return nil
}
