package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/tutaexport/tuta-export/internal/config"
	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/transport"
)

// withSession logs in, runs fn with the authenticated session, and logs
// out unconditionally. A logout failure is combined with fn's error via
// errors.Join so neither is lost. SIGTERM/SIGINT cancel the whole flow.
func withSession(cfg config.Config, logger *slog.Logger, fn func(ctx context.Context, client *transport.Client, s *session.Session) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []transport.Option
	opts = append(opts, transport.WithLogger(logger))
	if cfg.DebugDumpJSON != "" {
		opts = append(opts, transport.WithDumpDir(cfg.DebugDumpJSON))
	}
	client := transport.New(opts...)

	s, err := session.Login(ctx, client, cfg.Host, cfg.Username, cfg.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	runErr := fn(ctx, client, s)
	logoutErr := session.Logout(context.Background(), client, cfg.Host, s)

	if runErr != nil || logoutErr != nil {
		return errors.Join(runErr, logoutErr)
	}
	return nil
}
