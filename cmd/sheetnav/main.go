package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sheetnav/internal/version"
)

// cli owns the command tree and the settings of the running command, so
// tracing is finished even when RunE fails and cobra skips post-run hooks.
type cli struct {
	root     *cobra.Command
	settings *settings
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{}
	root := &cobra.Command{
		Use:           "sheetnav",
		Short:         "Inspect spreadsheet history fragments",
		Long:          `sheetnav parses, renders and transforms the URL fragments a browser spreadsheet keeps in its address bar`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to sheetnav.toml (default: search upwards)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|command|batch|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace encoding (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval for long runs (0 disables)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		finish, err := setupTracing(cmd, s)
		if err != nil {
			return err
		}
		s.finish = finish
		c.settings = s
		cmd.SetContext(withSettings(cmd.Context(), s))
		return nil
	}

	root.AddCommand(
		newParseCmd(),
		newRenderCmd(),
		newTransitionCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	c.root = root
	return c
}

// run executes args and finishes tracing with the command's outcome.
func (c *cli) run(ctx context.Context, args []string) error {
	c.root.SetArgs(args)
	err := c.root.ExecuteContext(ctx)
	if c.settings != nil && c.settings.finish != nil {
		c.settings.finish(err)
		c.settings.finish = nil
	}
	return err
}

func main() {
	c := newCLI(os.Stdout, os.Stderr)
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
