package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Gameaday/pokermon/cmd/pokermon/shared"
	"github.com/Gameaday/pokermon/internal/arena"
	"github.com/Gameaday/pokermon/internal/monster"
)

// ArenaCmd serves the decision and battle engines over websocket
type ArenaCmd struct {
	Config   string `kong:"help='Arena config file (HCL)'"`
	Listen   string `kong:"help='Listen address override (host:port)'"`
	Seed     *int64 `kong:"help='Base seed override (optional)'"`
	JSONLogs bool   `kong:"help='Emit structured JSON logs'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *ArenaCmd) Run() error {
	// Configure logging
	var logger zerolog.Logger
	if c.JSONLogs {
		logger = shared.SetupStructuredLogger(c.Debug)
	} else {
		logger = shared.SetupLogger(c.Debug)
	}

	cfg, err := arena.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Listen != "" {
		host, portStr, err := net.SplitHostPort(c.Listen)
		if err != nil {
			return fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid listen port %q: %w", portStr, err)
		}
		cfg.Arena.Host = host
		cfg.Arena.Port = port
	}
	if c.Seed != nil {
		cfg.Arena.Seed = *c.Seed
		logger.Info().Int64("seed", *c.Seed).Msg("Using deterministic base seed")
	}

	db, err := monster.Load()
	if err != nil {
		return err
	}

	// Create and start server
	srv, err := cfg.Build(db, shared.EngineLogger(c.Debug, cfg.Arena.LogFile))
	if err != nil {
		return err
	}

	logger.Info().
		Str("address", cfg.Addr()).
		Dur("decision_timeout", cfg.Timeout()).
		Int("species", db.Count()).
		Str("log_file", cfg.Arena.LogFile).
		Msg("Starting pokermon arena")

	// Setup graceful shutdown
	ctx := shared.SetupSignalHandlerWithLogger(logger)

	// Start server in background
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down arena...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
