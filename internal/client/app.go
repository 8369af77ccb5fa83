package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/service"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
	"github.com/MKhiriev/go-wallet-lock/internal/tui"
)

// UI is the presentation layer driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || storages == nil || ui == nil {
		return nil, errors.New("client app: services, storages and ui are required")
	}
	return &App{services: services, storages: storages, ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits and then closes the storage. Quitting from
// the UI and cancellation of ctx are normal exits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing storage")
		}
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || (err != nil && ctx.Err() != nil) {
		a.logger.Info().Str("func", "App.Run").Msg("client stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
