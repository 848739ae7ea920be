// Package models contains the data structures used throughout wakeonlan.
package models

// Config holds the resolved configuration for all commands.
type Config struct {
	Wake   WakeConfig
	Listen ListenConfig
}
