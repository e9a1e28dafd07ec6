package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheetnav/internal/diagfmt"
	"sheetnav/internal/driver"
	"sheetnav/internal/history"
	"sheetnav/internal/trace"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] FRAGMENT...",
		Short: "Parse fragments and print their tokens",
		Long: `Parse turns each fragment (with or without the leading '#') into a history token.
Fragments the grammar rejects become Unknown; the reason is printed to stderr.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack|short)")
	cmd.Flags().Bool("fields", false, "print every token field (pretty format)")
	cmd.Flags().Bool("strict", false, "fail when a fragment does not parse")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd.Context())
	fields, err := cmd.Flags().GetBool("fields")
	if err != nil {
		return fmt.Errorf("failed to get fields flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}

	entries, err := parseEntries(cmd, s, driver.Inputs(args...))
	if err != nil {
		return err
	}
	if err := writeEntries(cmd, s, entries, fields); err != nil {
		return err
	}
	printTimings(cmd, s)

	if strict {
		if n := countUnknown(entries); n > 0 {
			return fmt.Errorf("%d of %d fragment(s) did not parse", n, len(entries))
		}
	}
	return nil
}

// parseEntries parses inputs through a driver so repeated fragments share
// the cache.
func parseEntries(cmd *cobra.Command, s *settings, inputs []driver.Input) ([]diagfmt.Entry, error) {
	d, err := driver.New(driver.Options{CacheSize: s.cfg.Cache.Size})
	if err != nil {
		return nil, err
	}
	tracer := trace.FromContext(cmd.Context())
	parent := trace.ParentSpan(cmd.Context())

	done := s.timer.Track("parse")
	entries := make([]diagfmt.Entry, len(inputs))
	for i, in := range inputs {
		p, _ := d.Parse(in.Text)
		trace.Point(tracer, trace.ScopeFragment, "parse", in.Text+" -> "+p.Token.Kind().String(), parent)
		entries[i] = diagfmt.Entry{Input: in.Text, Token: p.Token, Diagnostics: p.Diagnostics}
	}
	done(fmt.Sprintf("%d fragments", len(inputs)))
	return entries, nil
}

func writeEntries(cmd *cobra.Command, s *settings, entries []diagfmt.Entry, fields bool) error {
	format, err := diagfmt.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return err
	}
	limitDiagnostics(entries, s.cfg.Check.MaxDiagnostics)
	pretty := diagfmt.PrettyOpts{Color: s.color, ShowNotes: true, Fields: fields}
	return diagfmt.Write(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, entries, pretty, diagfmt.JSONOpts{Indent: true})
}

// limitDiagnostics keeps the first max diagnostics across all entries;
// max <= 0 keeps everything.
func limitDiagnostics(entries []diagfmt.Entry, max int) {
	if max <= 0 {
		return
	}
	left := max
	for i := range entries {
		n := min(left, len(entries[i].Diagnostics))
		entries[i].Diagnostics = entries[i].Diagnostics[:n]
		left -= n
	}
}

func countUnknown(entries []diagfmt.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Token.Kind() == history.Unknown {
			n++
		}
	}
	return n
}
