package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/wakeonlan/internal/config"
	"github.com/fgeck/wakeonlan/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadConfig resolves flags, environment and the optional config file.
func loadConfig(cmd *cobra.Command) (*models.Config, error) {
	parser := config.NewParser()
	if err := parser.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := parser.Load(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("failed to load config")
		return nil, err
	}

	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
