package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sheetnav/internal/diagfmt"
	"sheetnav/internal/driver"
	"sheetnav/internal/prof"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] FILE",
		Short: "Verify the token laws for every fragment in a file",
		Long: `Check reads one fragment per line from FILE (- for stdin), parses each in
parallel and verifies that it round-trips and that close and clear-action
behave. Lines starting with '#' are comments unless they start with "#/".
With --watch the file is checked again after every save until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().Bool("strict", false, "fail when a fragment does not parse")
	cmd.Flags().Bool("watch", false, "re-check FILE whenever it changes")
	cmd.Flags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.Flags().String("mem-profile", "", "write a heap profile to file")
	cmd.Flags().String("runtime-trace", "", "write a Go runtime trace to file")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd.Context())
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	path := args[0]
	if watch && path == "-" {
		return errors.New("--watch needs a file, not stdin")
	}

	session, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}()

	if !watch {
		return checkOnce(cmd.Context(), cmd, s, path, mode, strict)
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	errOut := cmd.ErrOrStderr()
	return watchFile(ctx, path, func() error {
		// каждый прогон печатает только свои замеры
		s.timer.Reset()
		// прогресс-окно мешает повторным прогонам
		return checkOnce(ctx, cmd, s, path, uiModeOff, strict)
	}, func(err error) {
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
		}
		fmt.Fprintf(errOut, "watching %s (ctrl-c to stop)\n", path)
	})
}

// checkOnce reads path, checks every fragment and reports the outcome.
func checkOnce(ctx context.Context, cmd *cobra.Command, s *settings, path string, mode uiMode, strict bool) error {
	done := s.timer.Track("read")
	inputs, err := readInputFile(cmd, path)
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d fragments", len(inputs)))

	opts := driver.Options{
		Jobs:      s.cfg.Check.Workers(),
		CacheSize: s.cfg.Cache.Size,
		Timer:     s.timer,
	}
	var (
		results []driver.Result
		sum     driver.Summary
	)
	if shouldUseTUI(mode) && len(inputs) > 0 {
		results, sum, err = runCheckWithUI(ctx, cmd, path, inputs, opts)
	} else {
		var d *driver.Driver
		if d, err = driver.New(opts); err == nil {
			results, sum, err = d.Check(ctx, inputs)
		}
	}
	if err != nil {
		return err
	}

	report(cmd, s, path, results, sum)
	printTimings(cmd, s)
	switch {
	case sum.Violations > 0:
		return fmt.Errorf("%d fragment(s) broke the token laws", sum.Violations)
	case strict && sum.Unknown > 0:
		return fmt.Errorf("%d fragment(s) did not parse", sum.Unknown)
	}
	return nil
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	var p prof.Paths
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"cpu-profile", &p.CPU},
		{"mem-profile", &p.Mem},
		{"runtime-trace", &p.Trace},
	} {
		v, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	return prof.Start(p)
}

func readInputFile(cmd *cobra.Command, path string) ([]driver.Input, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		// #nosec G304 -- path is the user's argument
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return driver.ReadInputs(r)
}

// report prints violations and, up to max-diagnostics, why fragments fell
// back to Unknown, then a summary line.
func report(cmd *cobra.Command, s *settings, path string, results []driver.Result, sum driver.Summary) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	shown := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errOut, "%s:%d: %s: %v\n", path, r.Line, r.Text, r.Err)
		}
		if len(r.Diagnostics) == 0 {
			continue
		}
		if limit := s.cfg.Check.MaxDiagnostics; limit > 0 && shown >= limit {
			continue
		}
		shown++
		if s.cfg.Output.Format == diagfmt.FormatShort.String() {
			diagfmt.ShortDiagnostics(errOut, fmt.Sprintf("%s:%d: %s", path, r.Line, r.Text), r.Diagnostics)
			continue
		}
		diagfmt.Pretty(errOut, r.Text, r.Diagnostics, diagfmt.PrettyOpts{Color: s.color, ShowNotes: true})
	}
	fmt.Fprintf(out, "checked %d fragment(s): %d unknown, %d violation(s), %d cache hit(s)\n",
		sum.Total, sum.Unknown, sum.Violations, sum.CacheHits)
}
