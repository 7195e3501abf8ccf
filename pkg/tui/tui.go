package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/haru/pkg/settings"
	"tableflip.dev/haru/pkg/store"
)

// Run starts the interactive calendar over the given persistence and blocks
// until the user quits or ctx is canceled.
func Run(ctx context.Context, p store.Persistence, view settings.Settings, saver *settings.Saver) error {
	snapshots, err := p.Subscribe(ctx)
	if err != nil {
		return err
	}

	m := New(p, p.Snapshot(ctx), snapshots, view, saver)
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = prog.Run()
	if saver != nil {
		if ferr := saver.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
