// Package ui renders a live terminal dashboard of host snapshots.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

// Source supplies snapshots to the dashboard.
type Source interface {
	Fetch(ctx context.Context) (model.Snapshot, error)
}

// SnapshotFunc is the signature of an in-process snapshot producer.
type SnapshotFunc func(ctx context.Context) model.Snapshot

// Local adapts an in-process producer, such as a sampler, to Source.
func Local(f SnapshotFunc) Source { return localSource(f) }

type localSource SnapshotFunc

func (l localSource) Fetch(ctx context.Context) (model.Snapshot, error) { return l(ctx), nil }

// Model renders the latest snapshot from a Source polled every interval.
type Model struct {
	source    Source
	label     string
	interval  time.Duration
	ctx       context.Context
	ctxCancel context.CancelFunc

	latest    model.Snapshot
	fetchedAt time.Time
	err       error
	width     int
	height    int
}

// New returns a dashboard polling source. label names the source in the header.
func New(source Source, label string, interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		source:    source,
		label:     label,
		interval:  interval,
		ctx:       ctx,
		ctxCancel: cancel,
		latest:    model.Zero(),
		width:     120,
		height:    40,
	}
}

// Messages
type (
	tickMsg     struct{}
	snapshotMsg struct {
		snap model.Snapshot
		at   time.Time
	}
	fetchErrMsg struct{ err error }
)

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.interval+5*time.Second)
		defer cancel()
		snap, err := m.source.Fetch(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return snapshotMsg{snap: snap, at: time.Now()}
	}
}

func (m *Model) Init() tea.Cmd { return m.fetchCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctxCancel()
			return m, tea.Quit
		}
	case snapshotMsg:
		m.latest, m.fetchedAt, m.err = msg.snap, msg.at, nil
		return m, tickCmd(m.interval)
	case fetchErrMsg:
		m.err = msg.err
		return m, tickCmd(m.interval)
	case tickMsg:
		return m, m.fetchCmd()
	}
	return m, nil
}

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

func (m *Model) View() string {
	s := m.latest
	stamp := "waiting for first sample"
	if !m.fetchedAt.IsZero() {
		stamp = m.fetchedAt.Format("Mon Jan 2 15:04:05 MST 2006")
	}
	header := titleStyle.Render("hostpulse") + "  " +
		subtleStyle.Render(m.label+"  "+stamp+"  (q to quit)")

	cpuCard := card("CPU", gaugeBar(s.CPUPercent, 28))
	memCard := card("Memory", gaugeBar(s.MemoryPercent, 28))
	netCard := card("Network", fmt.Sprintf("%10.3f Mb/s", s.NetworkMbps))
	line1 := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, memCard, netCard)

	cmdWidth := m.width - 40
	if cmdWidth < 18 {
		cmdWidth = 18
	}
	procTable := card(fmt.Sprintf("Top CPU (%d)", len(s.Processes)),
		renderTable(s.Processes, len(s.Processes), cmdWidth))

	parts := []string{header, line1, procTable}
	if m.err != nil {
		parts = append(parts, errorStyle.Render("fetch failed: "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}

func renderTable(rows []model.ProcessView, limit, cmdWidth int) string {
	n := min(limit, len(rows))
	var b strings.Builder
	fmt.Fprintf(&b, "%-7s %-16s %6s %6s  %s\n", "pid", "name", "cpu%", "mem%", "cmd")
	for i := 0; i < n; i++ {
		r := rows[i]
		cmd := r.Cmdline
		if cmd == "" {
			cmd = r.Name
		}
		fmt.Fprintf(&b, "%-7d %-16s %6.2f %6.2f  %s\n",
			r.PID, truncate(r.Name, 16), r.CPUPercent, r.MemoryPercent, truncate(cmd, cmdWidth))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(source Source, label string, interval time.Duration) error {
	m := New(source, label, interval)
	defer m.ctxCancel()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
