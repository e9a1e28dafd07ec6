package pattern_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sheetnav/internal/pattern"
)

func TestParse(t *testing.T) {
	tests := []struct {
		kind pattern.Kind
		text string
		ok   bool
	}{
		{pattern.DateFormat, "yyyy/MM/dd", true},
		{pattern.DateFormat, "dd \"de\" MMMM", true},
		{pattern.DateFormat, "hh:mm", false},
		{pattern.DateParse, "dd/MM/yyyy;yyyy-MM-dd", true},
		{pattern.DateParse, "dd/MM/yyyy;", false},
		{pattern.DateFormat, "dd/MM;yyyy", false},
		{pattern.TimeFormat, "hh:mm:ss a", true},
		{pattern.DateTimeFormat, "yyyy-MM-dd HH:mm", true},
		{pattern.NumberFormat, "#,##0.00", true},
		{pattern.NumberFormat, "0.0E0", true},
		{pattern.NumberFormat, "'unterminated", false},
		{pattern.NumberParse, "#0;$#0.00", true},
		{pattern.TextFormat, "@", true},
		{pattern.TextFormat, "'only literal'", false},
		{pattern.TimeParse, "", false},
	}
	for _, tt := range tests {
		p, err := pattern.Parse(tt.kind, tt.text)
		if tt.ok != (err == nil) {
			t.Errorf("Parse(%s, %q) err = %v, want ok=%v", tt.kind, tt.text, err, tt.ok)
			continue
		}
		if err != nil && !errors.Is(err, pattern.ErrBadPattern) {
			t.Errorf("Parse(%s, %q) err = %v, want ErrBadPattern", tt.kind, tt.text, err)
		}
		if tt.ok && (p.String() != tt.text || p.Kind() != tt.kind) {
			t.Errorf("Parse(%s, %q) = %s %q", tt.kind, tt.text, p.Kind(), p)
		}
	}
}

func TestAlternatives(t *testing.T) {
	p, err := pattern.Parse(pattern.DateParse, `dd";"MM;yyyy`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`dd";"MM`, "yyyy"}
	if diff := cmp.Diff(want, p.Alternatives()); diff != "" {
		t.Fatalf("alternatives mismatch (-want +got):\n%s", diff)
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range pattern.Kinds() {
		back, err := pattern.ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, back, err)
		}
	}
	if _, err := pattern.ParseKind("color"); err == nil {
		t.Fatal("unknown kind accepted")
	}
}
