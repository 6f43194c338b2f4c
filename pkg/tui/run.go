package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/ledger/pkg/app"
)

// Run opens the UI on the terminal until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	if svc == nil {
		return errors.New("can not open ui, no service")
	}
	m := New(ctx, svc)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
