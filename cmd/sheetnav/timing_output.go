package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printTimings writes the phase table to stderr when --timings is set.
func printTimings(cmd *cobra.Command, s *settings) {
	if !s.timings {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
}
