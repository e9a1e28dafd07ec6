package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheetnav/internal/diagfmt"
	"sheetnav/internal/driver"
	"sheetnav/internal/history"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FRAGMENT",
		Short: "Print the canonical form of a fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settingsFrom(cmd.Context())
			entries, err := parseEntries(cmd, s, driver.Inputs(args[0]))
			if err != nil {
				return err
			}
			e := entries[0]
			if e.Token.Kind() == history.Unknown {
				diagfmt.Pretty(cmd.ErrOrStderr(), e.Input, e.Diagnostics, diagfmt.PrettyOpts{Color: s.color})
				return fmt.Errorf("%q does not parse", e.Input)
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Token.Fragment())
			printTimings(cmd, s)
			return nil
		},
	}
}
