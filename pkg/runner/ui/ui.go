// Package ui runs the interactive calendar.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/haru/pkg/logger"
	"tableflip.dev/haru/pkg/settings"
	"tableflip.dev/haru/pkg/store"
	"tableflip.dev/haru/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not start, no persistence")
	}

	view, found, err := u.Persistence.LoadSettings()
	if err != nil {
		return err
	}
	if !found {
		view = settings.Default()
	}
	view = view.Normalize()

	saver := settings.NewSaver(u.Persistence.SaveSettings, settings.SaverOpts{
		OnError: func(err error) {
			logger.Error("settings save failed", "err", err)
		},
	})
	defer saver.Stop()

	return tui.Run(ctx, u.Persistence, view, saver)
}
