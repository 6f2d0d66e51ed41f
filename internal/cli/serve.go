// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// serve.go - The "serve" command: runs the backend until interrupted.

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/tasklist-tui/internal/config"
	"github.com/jeranaias/tasklist-tui/internal/server"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 5 * time.Second

// HandleServe handles the "serve" command.
// The port comes from --port, then TASKLIST_PORT, then config, then 8080.
func HandleServe(args Args) error {
	if v, ok := args.Options["port"]; ok {
		return fmt.Errorf("invalid --port value %q", v)
	}

	cfg, err := serveConfig(args)
	if err != nil {
		return err
	}

	logger := log.New(stdout, "", 0)
	if args.Verbose {
		logger.SetFlags(log.LstdFlags)
	}

	srv := server.NewServer(cfg.Server.Port).WithLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, srv)
}

// serveConfig applies --port to a copy of the process configuration and
// validates the result. The shared configuration is never modified.
func serveConfig(args Args) (*config.Config, error) {
	cfg := config.Global().Clone()
	if args.Port != 0 {
		cfg.Server.Port = args.Port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid serve settings: %w", err)
	}
	return cfg, nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *server.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
