package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

func newTUICmd(flags *clientFlags, buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, flags, buildInfo)
		},
	}
}

func runTUI(cmd *cobra.Command, flags *clientFlags, buildInfo models.AppBuildInfo) error {
	cfg, err := loadClientConfig(cmd, flags)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("go-pass-vault-client", cfg.Debug)

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return err
	}

	services := service.NewClientServices(serverAdapter, log)
	app := client.NewApp(services, tui.New(services, buildInfo, log), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}
