package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-exchange-admin/internal/client"
	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/tui"
	"github.com/MKhiriev/go-exchange-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewClientLogger("exchange-admin-console")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdin, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrLoginCancelled) || errors.Is(err, context.Canceled) {
			return nil
		}
		log.Err(err).Msg("client run error")
		return err
	}

	return nil
}
