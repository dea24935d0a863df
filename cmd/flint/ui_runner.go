package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flint/internal/driver"
	"flint/internal/ui"
)

type lexOutcome struct {
	results []driver.FileResult
	err     error
}

// runLexWithUI drives a multi-file lex behind a live progress display.
// The driver runs in a goroutine feeding file events into the UI; the
// channel closes when the run finishes, which quits the program.
func runLexWithUI(ctx context.Context, title string, paths []string, opts driver.FilesOptions) ([]driver.FileResult, error) {
	events := make(chan driver.FileEvent, 256)
	outcomeCh := make(chan lexOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.OnFile = func(ev driver.FileEvent) { events <- ev }
		results, err := driver.RunOnFiles(ctx, paths, optsCopy)
		outcomeCh <- lexOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
