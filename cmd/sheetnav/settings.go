package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheetnav/internal/config"
	"sheetnav/internal/observ"
)

// settings is the config file merged with the flags that were set.
type settings struct {
	cfg     config.Config
	color   bool
	timings bool
	timer   *observ.Timer
	finish  func(err error)
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFrom never returns nil so commands run without PersistentPreRunE
// (e.g. --help paths) still see defaults.
func settingsFrom(ctx context.Context) *settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
			return s
		}
	}
	return &settings{cfg: config.Default(), timer: observ.NewTimer()}
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	pf := cmd.Root().PersistentFlags()

	path, err := pf.GetString("config")
	if err != nil {
		return nil, err
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	// флаги, заданные явно, перекрывают файл
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"color", &cfg.Output.Color},
		{"trace", &cfg.Trace.Output},
		{"trace-level", &cfg.Trace.Level},
		{"trace-mode", &cfg.Trace.Mode},
	}
	for _, o := range overrides {
		if !pf.Changed(o.flag) {
			continue
		}
		if *o.dst, err = pf.GetString(o.flag); err != nil {
			return nil, err
		}
	}
	if pf.Changed("max-diagnostics") {
		if cfg.Check.MaxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		if cfg.Check.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	timings, err := pf.GetBool("timings")
	if err != nil {
		return nil, err
	}
	return &settings{
		cfg:     cfg,
		color:   useColor(cfg.Output.Color, os.Stdout),
		timings: timings,
		timer:   observ.NewTimer(),
	}, nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
