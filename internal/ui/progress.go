// Package ui renders the interactive progress view of sheetnav check.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sheetnav/internal/driver"
)

// maxRows caps the fragment list; the rest is summarised in one line.
const maxRows = 20

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fragmentItem
	failed  int
	width   int
	done    bool
}

type fragmentItem struct {
	text   string
	stage  driver.Stage
	status driver.Status
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model fed by events; closing the
// channel ends the program.
func NewProgressModel(title string, fragments []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fragmentItem, len(fragments))
	for i, f := range fragments {
		items[i] = fragmentItem{text: f, status: driver.StatusQueued}
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s (%d fragments)", m.title, len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	rows := m.visible()
	for _, it := range rows {
		label := statusLabel(it)
		fmt.Fprintf(&b, "  %s %s\n", styleStatus(label).Render(fmt.Sprintf("%12s", label)), truncate(it.text, nameWidth))
	}
	if hidden := len(m.items) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "  %12s … %d more\n", "", hidden)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	if m.failed > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(fmt.Sprintf("\n%d failed", m.failed)))
	}
	b.WriteString("\n")
	return b.String()
}

// visible prefers fragments in flight and failures over finished ones.
func (m *progressModel) visible() []fragmentItem {
	if len(m.items) <= maxRows {
		return m.items
	}
	out := make([]fragmentItem, 0, maxRows)
	for _, want := range []driver.Status{driver.StatusError, driver.StatusWorking, driver.StatusQueued, driver.StatusDone} {
		for _, it := range m.items {
			if it.status == want && len(out) < maxRows {
				out = append(out, it)
			}
		}
	}
	return out
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	if ev.Index < 0 || ev.Index >= len(m.items) {
		return nil
	}
	it := &m.items[ev.Index]
	if ev.Stage != 0 {
		it.stage = ev.Stage
	}
	it.status = ev.Status
	if ev.Status == driver.StatusError {
		m.failed++
	}

	total := 0.0
	for _, it := range m.items {
		total += progressOf(it)
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

func progressOf(it fragmentItem) float64 {
	switch {
	case it.status == driver.StatusDone || it.status == driver.StatusError:
		return 1
	case it.stage == driver.StageLaws:
		return 0.5
	case it.stage == driver.StageParse:
		return 0.2
	default:
		return 0
	}
}

func statusLabel(it fragmentItem) string {
	switch it.status {
	case driver.StatusDone:
		return "ok"
	case driver.StatusError:
		return "error"
	case driver.StatusWorking:
		return it.stage.String()
	default:
		return "queued"
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "ok":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "parsing", "checking":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
