// Package tui is the terminal front end: a bubbletea screen router over the
// client services. All vault state lives in the services; the models here
// hold only presentation state.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/internal/service"
)

type TUI struct {
	services *service.ClientServices
	session  service.SessionKeeper
	version  string
	log      *logger.Logger
}

func New(services *service.ClientServices, session service.SessionKeeper, version string, log *logger.Logger) (*TUI, error) {
	if services == nil || session == nil {
		return nil, errors.New("tui requires services and a session store")
	}
	return &TUI{services: services, session: session, version: version, log: log}, nil
}

// Run drives the interactive loop until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.session, t.version)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	t.log.Info().Msg("ui loop finished")
	return nil
}
