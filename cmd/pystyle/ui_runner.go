package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pystyle/internal/driver"
	"pystyle/internal/ui"
)

// runCheckWithUI runs the check on a goroutine and shows its progress on
// stderr. Reports are buffered in w and written once the view has closed.
func runCheckWithUI(ctx context.Context, path string, opts driver.Options, w *reportWriter) error {
	files, err := driver.Discover(path)
	if err != nil {
		return err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan error, 1)
	w.buffered = true

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		outcomeCh <- driver.Check(ctx, path, runOpts, w.add)
		close(events)
	}()

	model := ui.NewProgressModel("pystyle", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// модель больше не читает канал
		go func() {
			for range events {
			}
		}()
	}
	checkErr := <-outcomeCh
	if uiErr != nil {
		return uiErr
	}
	return checkErr
}
