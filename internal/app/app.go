package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/genex/internal/app/tui"
	"github.com/emiliopalmerini/genex/internal/explorer"
	"github.com/emiliopalmerini/genex/internal/ports"
)

// Run starts the explorer TUI and blocks until the user quits or the
// process receives SIGINT/SIGTERM.
func Run(ctx context.Context, orchestrator *explorer.Orchestrator, history ports.HistoryRepository) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(
		tui.NewApp(orchestrator, history),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
