package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/service"
	"github.com/MKhiriev/go-wallet-lock/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	cfg       config.ClientLock
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientLock, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Coordinator == nil {
		return nil, errors.New("tui: client services are required")
	}
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the setup page when no passcode exists yet and the lock page
// otherwise, and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	exists, err := t.services.Credentials.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check passcode: %w", err)
	}

	start := pageLock
	if !exists {
		start = pageSetup
	}

	pages := map[string]tea.Model{
		pageSetup:    NewSetupModel(ctx, t.services.Setup),
		pageLock:     NewLockModel(ctx, t.services.Coordinator, t.services.CountdownJob, t.cfg.PollInterval),
		pageUnlocked: NewUnlockedModel(),
	}

	root := NewRootModel(pages, start, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	coordinator := t.services.Coordinator
	coordinator.SetListener(func(s models.LockSnapshot) { p.Send(snapshotMsg{snap: s}) })
	coordinator.OnUnlock(func() { p.Send(unlockedMsg{}) })
	defer func() {
		coordinator.SetListener(nil)
		coordinator.OnUnlock(nil)
		t.services.CountdownJob.Stop()
		coordinator.Dismiss()
	}()

	t.logger.Info().Str("func", "TUI.Run").Str("page", start).Msg("starting terminal UI")

	finalModel, runErr := p.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
