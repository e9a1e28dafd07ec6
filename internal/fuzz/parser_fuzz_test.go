package fuzztests

import (
	"testing"
	"time"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
	"sheetnav/internal/testkit"
)

// parseTimeout bounds one parse; longer means a loop in the parser.
const parseTimeout = 2 * time.Second

func clamp(input string) string {
	if len(input) > maxFuzzInput {
		return input[:maxFuzzInput]
	}
	return input
}

// FuzzParseIsTotal checks that any text yields a token that obeys the laws,
// and that an Unknown result comes with exactly one in-bounds diagnostic.
func FuzzParseIsTotal(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		input = clamp(input)
		bag := diag.NewBag(8)
		tok := history.ParseWithOptions(input, history.Options{Reporter: diag.BagReporter{Bag: bag}})

		if tok.Kind() == history.Unknown {
			if tok.Raw() != input {
				t.Fatalf("Unknown raw = %q, want %q", tok.Raw(), input)
			}
			if bag.Len() != 1 {
				t.Fatalf("%q: %d diagnostics, want 1", input, bag.Len())
			}
		} else if bag.Len() != 0 {
			t.Fatalf("%q parsed to %v but reported %v", input, tok.Kind(), bag.Items())
		}
		if err := testkit.CheckDiagnosticSpans(input, bag.Items()); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckLaws(tok); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	})
}

// FuzzParseCanonical checks that re-parsing a canonical fragment is stable.
func FuzzParseCanonical(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		tok := history.Parse(clamp(input))
		if tok.Kind() == history.Unknown {
			return
		}
		canon := tok.Fragment()
		again := history.Parse(canon)
		if again.Fragment() != canon {
			t.Fatalf("%q: canonical %q re-renders as %q", input, canon, again.Fragment())
		}
	})
}

// FuzzParseNoHang runs each parse under a deadline.
func FuzzParseNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		input = clamp(input)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = history.Parse(input)
		}()
		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parse did not finish within %v for %d bytes", parseTimeout, len(input))
		}
	})
}
