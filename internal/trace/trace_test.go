package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sheetnav/internal/trace"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want trace.Level
		ok   bool
	}{
		{"off", trace.LevelOff, true},
		{"ERROR", trace.LevelError, true},
		{"command", trace.LevelCommand, true},
		{"Batch", trace.LevelBatch, true},
		{"debug", trace.LevelDebug, true},
		{"phase", trace.LevelOff, false},
	}
	for _, tt := range tests {
		got, err := trace.ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level trace.Level
		scope trace.Scope
		want  bool
	}{
		{trace.LevelError, trace.ScopeCommand, false},
		{trace.LevelCommand, trace.ScopeCommand, true},
		{trace.LevelCommand, trace.ScopeBatch, false},
		{trace.LevelBatch, trace.ScopeBatch, true},
		{trace.LevelBatch, trace.ScopeFragment, false},
		{trace.LevelDebug, trace.ScopeFragment, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelBatch, trace.FormatText)

	cmd := trace.Begin(tr, trace.ScopeCommand, "check", 0)
	frag := trace.Begin(tr, trace.ScopeFragment, "fragment:/cell/A1", cmd.ID())
	frag.End("")
	cmd.WithExtra("fragments", "1").End("ok")

	out := buf.String()
	if strings.Contains(out, "fragment:/cell/A1") {
		t.Errorf("fragment span leaked at batch level:\n%s", out)
	}
	if !strings.Contains(out, "→ check") || !strings.Contains(out, "← check (ok) {fragments=1}") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	trace.Point(tr, trace.ScopeFragment, "parse", "/cell/A1", 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("bad json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "fragment" || got["detail"] != "/cell/A1" {
		t.Errorf("event = %v", got)
	}
}

func TestFailPassesErrorLevel(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelError)
	trace.Begin(ring, trace.ScopeCommand, "parse", 0).End("")
	trace.Point(ring, trace.ScopeCommand, "note", "", 0)
	trace.Fail(ring, "parse", errors.New("boom"), 0)

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	if events[0].Detail != "boom" || events[0].Extra[trace.ExtraError] == "" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestRingWraps(t *testing.T) {
	ring := trace.NewRingTracer(3, trace.LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		trace.Point(ring, trace.ScopeFragment, name, "", 0)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ""); got != "cde" {
		t.Errorf("snapshot = %q, want cde", got)
	}
}

func TestMultiDump(t *testing.T) {
	var stream, dump bytes.Buffer
	ring := trace.NewRingTracer(4, trace.LevelDebug)
	multi := trace.NewMultiTracer(trace.LevelDebug,
		trace.NewStreamTracer(&stream, trace.LevelDebug, trace.FormatText), ring)

	trace.Point(multi, trace.ScopeBatch, "batch", "", 0)
	ok, err := multi.Dump(&dump, trace.FormatText)
	if !ok || err != nil {
		t.Fatalf("Dump = %v, %v", ok, err)
	}
	if stream.String() == "" || !strings.Contains(dump.String(), "batch") {
		t.Errorf("stream %q dump %q", stream.String(), dump.String())
	}
	if err := multi.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("off tracer is enabled")
	}
	if d := trace.Begin(tr, trace.ScopeCommand, "x", 0).End(""); d != 0 {
		t.Errorf("nop span took %v", d)
	}
}

func TestStartNestsThroughContext(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)

	ctx, outer := trace.Start(ctx, trace.ScopeCommand, "check")
	_, inner := trace.Start(ctx, trace.ScopeBatch, "batch")
	inner.End("")
	outer.End("")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events", len(events))
	}
	if events[1].ParentID != outer.ID() {
		t.Errorf("inner parent = %d, want %d", events[1].ParentID, outer.ID())
	}
	if trace.FromContext(context.Background()) != trace.Nop {
		t.Error("empty context should give Nop")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]trace.Format{
		"": trace.FormatAuto, "text": trace.FormatText, "ndjson": trace.FormatNDJSON, "json": trace.FormatNDJSON,
	} {
		got, err := trace.ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := trace.ParseFormat("chrome"); err == nil {
		t.Error("chrome accepted")
	}
}
