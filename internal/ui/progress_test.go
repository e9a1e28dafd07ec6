package ui

import (
	"strings"
	"testing"

	"sheetnav/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"/123/Sheet", 20, "/123/Sheet"},
		{"/123/Sheet/cell/A1", 10, "/123/Sh..."},
		{"/123", 2, "/1"},
		{"/123", 0, "/123"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestApplyEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("check", []string{"/", "/nope"}, events).(*progressModel)

	m.apply(driver.Event{Index: 0, Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := statusLabel(m.items[0]); got != "parsing" {
		t.Errorf("label = %q", got)
	}
	m.apply(driver.Event{Index: 0, Stage: driver.StageLaws, Status: driver.StatusDone})
	m.apply(driver.Event{Index: 1, Stage: driver.StageLaws, Status: driver.StatusError})
	m.apply(driver.Event{Index: 7, Status: driver.StatusDone})

	if m.failed != 1 {
		t.Errorf("failed = %d", m.failed)
	}
	view := m.View()
	for _, want := range []string{"check (2 fragments)", "ok", "error", "/nope", "1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestVisibleCapsRows(t *testing.T) {
	frags := make([]string, maxRows+5)
	for i := range frags {
		frags[i] = "/"
	}
	m := NewProgressModel("check", frags, nil).(*progressModel)
	m.apply(driver.Event{Index: maxRows + 2, Stage: driver.StageLaws, Status: driver.StatusError})
	rows := m.visible()
	if len(rows) != maxRows || rows[0].status != driver.StatusError {
		t.Errorf("rows = %d, first %+v", len(rows), rows[0])
	}
}
