package driver

import (
	"context"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
	"sheetnav/internal/observ"
	"sheetnav/internal/testkit"
	"sheetnav/internal/trace"
)

// Options configure a Driver.
type Options struct {
	Jobs      int // <= 0 means GOMAXPROCS
	CacheSize int // <= 0 disables the parse cache
	Observer  Observer
	Timer     *observ.Timer // optional; receives "parse" and "laws" totals
}

// Driver parses fragments through a shared cache.
type Driver struct {
	opts  Options
	cache *parseCache
	hits  atomic.Int64
}

func New(opts Options) (*Driver, error) {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	cache, err := newParseCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Driver{opts: opts, cache: cache}, nil
}

// Parse returns the token for text and the diagnostic explaining an
// Unknown result. The second value reports a cache hit.
func (d *Driver) Parse(text string) (Parsed, bool) {
	if p, ok := d.cache.get(text); ok {
		d.hits.Add(1)
		return p, true
	}
	bag := diag.NewBag(1)
	tok := history.ParseWithOptions(text, history.Options{Reporter: diag.BagReporter{Bag: bag}})
	p := Parsed{Token: tok, Diagnostics: append([]diag.Diagnostic(nil), bag.Items()...)}
	d.cache.put(text, p)
	return p, false
}

// Result is the outcome for one input.
type Result struct {
	Input
	Parsed
	Cached bool
	// Err joins law violations and diagnostic span problems; nil when clean.
	Err error
}

// Unknown reports whether the fragment fell back to Unknown.
func (r Result) Unknown() bool { return r.Token.Kind() == history.Unknown }

// Summary aggregates a batch.
type Summary struct {
	Total      int
	Unknown    int
	Violations int
	CacheHits  int
	CacheLen   int
}

// Check parses every input and verifies the token laws. Results are in input
// order. Only context cancellation makes it return an error; law violations
// are reported per result.
func (d *Driver) Check(ctx context.Context, inputs []Input) ([]Result, Summary, error) {
	ctx, span := trace.Start(ctx, trace.ScopeBatch, "check")
	defer span.End("")
	tracer := trace.FromContext(ctx)

	for i, in := range inputs {
		d.opts.Observer.emit(Event{Index: i, Fragment: in.Text, Status: StatusQueued})
	}

	results := make([]Result, len(inputs))
	var parseNS, lawsNS atomic.Int64
	hitsBefore := d.hits.Load()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(d.opts.Jobs, len(inputs))))
	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fs := trace.Begin(tracer, trace.ScopeFragment, "fragment:"+in.Text, span.ID())

			d.opts.Observer.emit(Event{Index: i, Fragment: in.Text, Stage: StageParse, Status: StatusWorking})
			start := time.Now()
			parsed, cached := d.Parse(in.Text)
			parseNS.Add(int64(time.Since(start)))

			d.opts.Observer.emit(Event{Index: i, Fragment: in.Text, Stage: StageLaws, Status: StatusWorking})
			start = time.Now()
			err := checkResult(in.Text, parsed)
			lawsNS.Add(int64(time.Since(start)))

			results[i] = Result{Input: in, Parsed: parsed, Cached: cached, Err: err}
			status := StatusDone
			if err != nil {
				status = StatusError
				trace.Fail(tracer, "law", err, fs.ID())
			}
			d.opts.Observer.emit(Event{Index: i, Fragment: in.Text, Stage: StageLaws, Status: status})
			fs.WithExtra("kind", parsed.Token.Kind().String()).End("")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	sum := Summary{
		Total:     len(inputs),
		CacheHits: int(d.hits.Load() - hitsBefore),
		CacheLen:  d.cache.len(),
	}
	for _, r := range results {
		if r.Unknown() {
			sum.Unknown++
		}
		if r.Err != nil {
			sum.Violations++
		}
	}
	if d.opts.Timer != nil {
		d.opts.Timer.Add("parse", time.Duration(parseNS.Load()), strconv.Itoa(sum.Total)+" fragments")
		d.opts.Timer.Add("laws", time.Duration(lawsNS.Load()), "")
	}
	span.WithExtra("fragments", strconv.Itoa(sum.Total)).
		WithExtra("violations", strconv.Itoa(sum.Violations))
	return results, sum, nil
}

func checkResult(text string, p Parsed) error {
	if err := testkit.CheckDiagnosticSpans(text, p.Diagnostics); err != nil {
		return err
	}
	return testkit.CheckLaws(p.Token)
}
