package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sheetnav/internal/driver"
	"sheetnav/internal/ui"
)

type checkOutcome struct {
	results []driver.Result
	sum     driver.Summary
	err     error
}

// runCheckWithUI runs the batch in the background and feeds its events to
// the progress view until the batch finishes.
func runCheckWithUI(ctx context.Context, cmd *cobra.Command, title string, inputs []driver.Input, opts driver.Options) ([]driver.Result, driver.Summary, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)
	opts.Observer = driver.ChannelObserver(events)

	d, err := driver.New(opts)
	if err != nil {
		return nil, driver.Summary{}, err
	}
	go func() {
		results, sum, err := d.Check(ctx, inputs)
		outcomeCh <- checkOutcome{results, sum, err}
		close(events)
	}()

	frags := make([]string, len(inputs))
	for i, in := range inputs {
		frags[i] = in.Text
	}
	model := ui.NewProgressModel("check "+title, frags, events)
	program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
	_, uiErr := program.Run()
	// окно могли закрыть раньше; дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, outcome.sum, uiErr
	}
	return outcome.results, outcome.sum, outcome.err
}
