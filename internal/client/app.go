package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a session is opened or the user quits.
	LoginFlow(ctx context.Context) (models.User, error)
	// MainLoop blocks until the user logs out or quits.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}

// App alternates between the login flow and the vault until the user quits.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	defer a.services.AuthService.Logout()

	for {
		user, err := a.ui.LoginFlow(ctx)
		if err != nil {
			return err
		}
		a.logger.Info().Int64("user_id", user.ID).Msg("logged in")

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("vault: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Int64("user_id", user.ID).Msg("logged out")

		if err = ctx.Err(); err != nil {
			return err
		}
	}
}
