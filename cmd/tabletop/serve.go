package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/tabletop/cmd/tabletop/shared"
	"github.com/lox/tabletop/internal/server"
)

// ServeCmd runs the WebSocket classification service.
type ServeCmd struct {
	Addr        string        `kong:"default=':8080',help='Server address'"`
	IdleTimeout time.Duration `kong:"default='5m',help='Close connections idle longer than this'"`
	Debug       bool          `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	zlog := shared.SetupStructuredLogger(c.Debug)

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	s := server.New(logger, server.WithIdleTimeout(c.IdleTimeout))

	zlog.Info().
		Str("address", c.Addr).
		Dur("idle_timeout", c.IdleTimeout).
		Msg("Starting classification server")

	ctx := shared.SetupSignalHandlerWithLogger(zlog)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(c.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		zlog.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
