// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/auth"
	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/session"
	"github.com/MKhiriev/go-exchange-admin/internal/tui"
	"github.com/MKhiriev/go-exchange-admin/internal/workers"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// ErrLoginFailed is returned by Run when every login attempt failed.
var ErrLoginFailed = errors.New("login failed")

type App struct {
	cfg       config.ClientAdapter
	buildInfo models.AppBuildInfo

	console *tui.Console
	lines   *tui.LineReader
	prompt  tui.CredentialsPrompt

	dialOptions []grpc.DialOption

	logger *logger.Logger
}

// NewApp builds the console around the process's standard streams.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, stdin *os.File, stdout io.Writer, log *logger.Logger) *App {
	console := tui.NewConsole(stdout)
	lines := tui.NewLineReader(stdin)

	return newApp(cfg.Adapter, buildInfo, console, lines, tui.NewCredentialsPrompt(stdin, lines, console), log)
}

func newApp(cfg config.ClientAdapter, buildInfo models.AppBuildInfo, console *tui.Console, lines *tui.LineReader,
	prompt tui.CredentialsPrompt, log *logger.Logger, dialOptions ...grpc.DialOption) *App {
	return &App{
		cfg:         cfg,
		buildInfo:   buildInfo,
		console:     console,
		lines:       lines,
		prompt:      prompt,
		dialOptions: dialOptions,
		logger:      log,
	}
}

// Run logs the operator in and serves the menu until the loop terminates.
// The event consumer is stopped and the connection closed before Run
// returns, whatever the reason.
func (a *App) Run(ctx context.Context) error {
	a.console.Print(tui.RenderBuildInfo(a.buildInfo))

	cred, err := a.login(ctx)
	if err != nil {
		return err
	}

	s, err := session.New(a.cfg, cred, a.logger, session.WithDialOptions(a.dialOptions...))
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Err(err).Msg("closing session")
		}
	}()

	consumer := workers.NewEventConsumer(s, tui.NewEventView(a.console), a.logger)
	background := workers.NewWorkers(a.logger, consumer)
	background.Start(ctx)
	defer background.Stop()

	a.logger.Info().Str("mode", string(s.AddUserMode())).Msg("session started")

	reason := tui.NewCommandLoop(s, a.lines, a.console, a.logger).Run(ctx)
	a.logger.Info().Stringer("reason", reason).Msg("session finished")

	return nil
}

func (a *App) login(ctx context.Context) (auth.Credential, error) {
	conn, err := adapter.Dial(a.cfg.GRPCAddress, a.dialOptions...)
	if err != nil {
		return auth.Credential{}, err
	}
	defer conn.Close()

	loginAdapter := adapter.NewGRPCAdminAdapter(conn, a.cfg, a.logger)

	var lastErr error
	for attempt := 1; attempt <= a.cfg.LoginAttempts; attempt++ {
		creds, err := a.prompt.Prompt(ctx, lastErr)
		if err != nil {
			return auth.Credential{}, err
		}

		cred, err := session.Login(ctx, loginAdapter, creds.Username, creds.Password)
		if err == nil {
			a.logger.Info().Str("username", creds.Username).Msg("logged in")
			a.console.Info("Logged in as " + creds.Username)
			return cred, nil
		}

		a.logger.Warn().Err(err).Int("attempt", attempt).Str("username", creds.Username).Msg("login attempt failed")
		lastErr = err
	}

	a.console.Error(fmt.Sprintf("Login failed %d times, giving up.", a.cfg.LoginAttempts))
	return auth.Credential{}, fmt.Errorf("%w after %d attempts: %w", ErrLoginFailed, a.cfg.LoginAttempts, lastErr)
}
