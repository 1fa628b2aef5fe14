package main

import (
	"context"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"lintfmt/internal/lint"
	"lintfmt/internal/report"
	"lintfmt/internal/ui"
)

type loadOutcome struct {
	bag *lint.Bag
	err error
}

// loadWithUI loads reports while a progress view runs on stderr.
func loadWithUI(ctx context.Context, files []string, opts report.LoadOptions) (*lint.Bag, error) {
	events := make(chan report.Event, 256)
	outcomeCh := make(chan loadOutcome, 1)

	go func() {
		o := opts
		o.Progress = report.ChannelSink{Ch: events}
		bag, err := report.LoadFiles(ctx, files, o)
		outcomeCh <- loadOutcome{bag: bag, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("loading reports", files, events)
	teaOpts := []tea.ProgramOption{tea.WithOutput(os.Stderr), tea.WithContext(ctx)}
	if slices.Contains(files, report.StdinName) {
		// stdin carries a report, not key presses
		teaOpts = append(teaOpts, tea.WithInput(nil))
	}
	program := tea.NewProgram(model, teaOpts...)
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the loader from blocking on a full channel
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.bag, uiErr
	}
	return outcome.bag, outcome.err
}
