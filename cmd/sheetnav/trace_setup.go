package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheetnav/internal/trace"
)

// setupTracing builds the tracer from the merged settings, attaches it to
// the command context and opens the command span. The returned finish ends
// the span, dumps the ring on failure and closes the tracer.
func setupTracing(cmd *cobra.Command, s *settings) (func(error), error) {
	pf := cmd.Root().PersistentFlags()

	level, err := trace.ParseLevel(s.cfg.Trace.Level)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(error) {}, nil
	}
	mode, err := trace.ParseMode(s.cfg.Trace.Mode)
	if err != nil {
		return nil, err
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	ringSize, err := pf.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeat, err := pf.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: s.cfg.Trace.Output,
		MaxSizeMB:  s.cfg.Trace.MaxSizeMB,
		MaxBackups: s.cfg.Trace.MaxBackups,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx, span := trace.Start(ctx, trace.ScopeCommand, cmd.Name())
	cmd.SetContext(ctx)
	hb := trace.StartHeartbeat(tracer, heartbeat)

	errOut := cmd.ErrOrStderr()
	return func(runErr error) {
		hb.Stop()
		trace.Fail(tracer, cmd.Name(), runErr, span.ID())
		span.End("")
		if runErr != nil {
			dumpRing(tracer, cmd, format)
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	}, nil
}

// dumpRing writes the in-memory events to stderr after a failed command.
func dumpRing(t trace.Tracer, cmd *cobra.Command, format trace.Format) {
	errOut := cmd.ErrOrStderr()
	// в режиме both поток уже записан, кольцо дублирует его
	ring, ok := t.(*trace.RingTracer)
	if !ok {
		return
	}
	fmt.Fprintln(errOut, "trace: last events")
	if err := ring.Dump(errOut, format); err != nil {
		fmt.Fprintf(errOut, "trace: dump error: %v\n", err)
	}
}
