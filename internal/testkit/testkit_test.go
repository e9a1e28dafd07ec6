package testkit_test

import (
	"testing"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
	"sheetnav/internal/source"
	"sheetnav/internal/testkit"
)

func TestSamplesCoverEveryKind(t *testing.T) {
	seen := make(map[history.Kind]bool)
	for _, tok := range testkit.Samples() {
		seen[tok.Kind()] = true
	}
	for _, k := range history.Kinds() {
		if k == history.Unknown {
			continue
		}
		if !seen[k] {
			t.Errorf("no sample for %s", k)
		}
	}
}

func TestSamplesObeyLaws(t *testing.T) {
	for _, tok := range testkit.Samples() {
		if err := testkit.CheckLaws(tok); err != nil {
			t.Errorf("%s: %v", tok.Fragment(), err)
		}
	}
}

func TestCheckLawsUnknown(t *testing.T) {
	if err := testkit.CheckLaws(history.Parse("/cell/not-a-reference")); err != nil {
		t.Fatalf("unknown token: %v", err)
	}
}

func TestCheckDiagnosticSpans(t *testing.T) {
	in := "/cell/zz"
	ok := []diag.Diagnostic{diag.NewError(diag.ValBadSelection, source.Span{Start: 6, End: 8}, "bad")}
	if err := testkit.CheckDiagnosticSpans(in, ok); err != nil {
		t.Fatalf("valid span rejected: %v", err)
	}
	beyond := []diag.Diagnostic{diag.NewError(diag.ValBadSelection, source.Span{Start: 6, End: 9}, "bad")}
	if err := testkit.CheckDiagnosticSpans(in, beyond); err == nil {
		t.Fatal("span beyond fragment accepted")
	}
	if err := testkit.CheckDiagnosticSpans(in, append(ok, ok...)); err == nil {
		t.Fatal("two diagnostics accepted")
	}
}
