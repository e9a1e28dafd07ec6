package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
)

// Law names reported by CheckLaws.
const (
	LawRoundTrip     = "round-trip"
	LawCloseIdem     = "close-idempotent"
	LawClearIdem     = "clear-action-idempotent"
	LawCloseChanges  = "close-changes-pending"
	LawClearRemoves  = "clear-action-removes-pending"
	LawSaveChanges   = "save-changes-select"
	LawUnknownStable = "unknown-raw-preserved"
)

// LawError names the law a token broke.
type LawError struct {
	Law   string
	Token history.Token
	Got   history.Token
}

func (e *LawError) Error() string {
	return fmt.Sprintf("%s: %s (%s) -> %s (%s)", e.Law, e.Token.Fragment(), e.Token.Kind(), e.Got.Fragment(), e.Got.Kind())
}

// CheckLaws verifies the token laws for t:
// 1) Parse(t.Fragment()) == t (Unknown tokens only keep their raw text)
// 2) Close and ClearAction are idempotent
// 3) Close and ClearAction change a token with a pending action
// 4) saving from a dialog select produces a different token
func CheckLaws(t history.Token) error {
	var errs []error

	parsed := history.Parse(t.Fragment())
	if t.Kind() == history.Unknown {
		if parsed.Kind() == history.Unknown && parsed.Raw() != t.Raw() {
			errs = append(errs, &LawError{LawUnknownStable, t, parsed})
		}
	} else if parsed != t {
		errs = append(errs, &LawError{LawRoundTrip, t, parsed})
	}

	closed := t.Close()
	if again := closed.Close(); again != closed {
		errs = append(errs, &LawError{LawCloseIdem, closed, again})
	}
	cleared := t.ClearAction()
	if again := cleared.ClearAction(); again != cleared {
		errs = append(errs, &LawError{LawClearIdem, cleared, again})
	}
	if t.Kind().HasPendingAction() {
		if closed == t {
			errs = append(errs, &LawError{LawCloseChanges, t, closed})
		}
		if cleared == t {
			errs = append(errs, &LawError{LawClearRemoves, t, cleared})
		}
	}

	if t.Kind().Action() == history.ActionSelect {
		if saved, err := t.SetSaveValue(""); err == nil && saved == t {
			errs = append(errs, &LawError{LawSaveChanges, t, saved})
		}
	}
	return errors.Join(errs...)
}

// CheckDiagnosticSpans verifies that every diagnostic reported for fragment
// points inside it and that at most one was reported.
func CheckDiagnosticSpans(fragment string, diags []diag.Diagnostic) error {
	if len(diags) > 1 {
		return fmt.Errorf("%d diagnostics for %q, want at most one", len(diags), fragment)
	}
	n, err := safecast.Conv[uint32](len(fragment))
	if err != nil {
		return fmt.Errorf("fragment length overflow: %w", err)
	}
	for _, d := range diags {
		sp := d.Primary
		if sp.End < sp.Start {
			return fmt.Errorf("%s: inverted span %v", d.Code.ID(), sp)
		}
		if sp.End > n {
			return fmt.Errorf("%s: span %v beyond fragment length %d", d.Code.ID(), sp, n)
		}
	}
	return nil
}
