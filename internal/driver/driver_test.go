package driver_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sheetnav/internal/driver"
	"sheetnav/internal/history"
	"sheetnav/internal/observ"
	"sheetnav/internal/testkit"
	"sheetnav/internal/trace"
)

func TestReadInputs(t *testing.T) {
	src := `
# comment
/123/Sheet/cell/A1

#/123/Sheet/column/B
  /plugin/*  
`
	got, err := driver.ReadInputs(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []driver.Input{
		{Line: 3, Text: "/123/Sheet/cell/A1"},
		{Line: 5, Text: "/123/Sheet/column/B"},
		{Line: 6, Text: "/plugin/*"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckKeepsOrder(t *testing.T) {
	var texts []string
	for _, tok := range testkit.Samples() {
		texts = append(texts, tok.Fragment())
	}
	texts = append(texts, "/nonsense")

	timer := observ.NewTimer()
	d, err := driver.New(driver.Options{Jobs: 4, CacheSize: 1024, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	results, sum, err := d.Check(context.Background(), driver.Inputs(texts...))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(texts) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Text != texts[i] {
			t.Errorf("result %d is %q, want %q", i, r.Text, texts[i])
		}
		if r.Err != nil {
			t.Errorf("%q: %v", r.Text, r.Err)
		}
	}
	last := results[len(results)-1]
	if !last.Unknown() || len(last.Diagnostics) != 1 {
		t.Errorf("/nonsense: kind %v diags %v", last.Token.Kind(), last.Diagnostics)
	}
	if sum.Total != len(texts) || sum.Unknown != 1 || sum.Violations != 0 {
		t.Errorf("summary = %+v", sum)
	}

	again, sum, err := d.Check(context.Background(), driver.Inputs(texts...))
	if err != nil {
		t.Fatal(err)
	}
	if sum.CacheHits != len(texts) {
		t.Errorf("second pass cache hits = %d, want %d", sum.CacheHits, len(texts))
	}
	for i, r := range again {
		if !r.Cached || r.Token != results[i].Token {
			t.Errorf("%q: cached=%v token=%v", r.Text, r.Cached, r.Token)
		}
	}
	if len(timer.Report().Phases) != 2 {
		t.Errorf("timer phases = %+v", timer.Report().Phases)
	}
}

func TestParseCache(t *testing.T) {
	d, err := driver.New(driver.Options{CacheSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	first, hit := d.Parse("/123/Sheet/cell/A1")
	if hit {
		t.Fatal("cold cache hit")
	}
	second, hit := d.Parse("/123/Sheet/cell/A1")
	if !hit || second.Token != first.Token {
		t.Errorf("second parse: hit=%v token=%v", hit, second.Token)
	}
	if first.Token.Kind() != history.CellSelect {
		t.Errorf("kind = %v", first.Token.Kind())
	}

	off, _ := driver.New(driver.Options{})
	off.Parse("/")
	if _, hit := off.Parse("/"); hit {
		t.Error("disabled cache hit")
	}
}

func TestCheckEvents(t *testing.T) {
	var mu sync.Mutex
	counts := map[driver.Status]int{}
	d, err := driver.New(driver.Options{Jobs: 2, Observer: func(ev driver.Event) {
		mu.Lock()
		counts[ev.Status]++
		mu.Unlock()
	}})
	if err != nil {
		t.Fatal(err)
	}
	inputs := driver.Inputs("/", "/plugin/*", "/123/Sheet")
	if _, _, err := d.Check(context.Background(), inputs); err != nil {
		t.Fatal(err)
	}
	want := map[driver.Status]int{
		driver.StatusQueued:  3,
		driver.StatusWorking: 6,
		driver.StatusDone:    3,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("event counts (-want +got):\n%s", diff)
	}
}

func TestCheckTracesFragments(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	d, _ := driver.New(driver.Options{Jobs: 1})
	if _, _, err := d.Check(ctx, driver.Inputs("/123/Sheet/row/2")); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Kind.String()+":"+ev.Name)
	}
	want := []string{
		"begin:check",
		"begin:fragment:/123/Sheet/row/2",
		"end:fragment:/123/Sheet/row/2",
		"end:check",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, _ := driver.New(driver.Options{})
	if _, _, err := d.Check(ctx, driver.Inputs("/")); err == nil {
		t.Error("cancelled check succeeded")
	}
}
