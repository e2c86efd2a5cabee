package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

type scriptedSource struct {
	snap model.Snapshot
	err  error
}

func (s *scriptedSource) Fetch(context.Context) (model.Snapshot, error) { return s.snap, s.err }

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		CPUPercent:    47.1,
		MemoryPercent: 75,
		NetworkMbps:   1.25,
		Processes: []model.ProcessView{
			{PID: 200, Name: "postgres", CPUPercent: 50, MemoryPercent: 12.5, Cmdline: "postgres -D /var/lib/pg"},
			{PID: 300, Name: "kworker", CPUPercent: 3.25},
		},
	}
}

func TestGaugeBar(t *testing.T) {
	tests := []struct {
		pct        float64
		wantFilled int
		wantLabel  string
	}{
		{0, 0, "  0.0%"},
		{50, 5, " 50.0%"},
		{100, 10, "100.0%"},
		{150, 10, "100.0%"},
		{-5, 0, "  0.0%"},
	}
	for _, tt := range tests {
		got := gaugeBar(tt.pct, 10)
		if n := strings.Count(got, gaugeFill); n != tt.wantFilled {
			t.Errorf("gaugeBar(%v) filled %d cells, want %d", tt.pct, n, tt.wantFilled)
		}
		if !strings.HasSuffix(got, tt.wantLabel) {
			t.Errorf("gaugeBar(%v) = %q, want suffix %q", tt.pct, got, tt.wantLabel)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 8, "much lo…"},
		{"héllo wörld", 6, "héllo…"},
		{"abc", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(sampleSnapshot().Processes, 12, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "postgres -D /var/lib/pg") || !strings.Contains(lines[1], "50.00") {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Empty command lines fall back to the process name.
	if !strings.HasSuffix(lines[2], "kworker") {
		t.Errorf("row 2 = %q", lines[2])
	}
	if got := renderTable(sampleSnapshot().Processes, 1, 40); strings.Count(got, "\n") != 1 {
		t.Errorf("limit not applied:\n%s", got)
	}
}

func TestModel_FetchCycle(t *testing.T) {
	src := &scriptedSource{snap: sampleSnapshot()}
	m := New(src, "local", time.Second)

	msg := m.Init()()
	if _, ok := msg.(snapshotMsg); !ok {
		t.Fatalf("Init command produced %T, want snapshotMsg", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("a snapshot should schedule the next tick")
	}
	if m.latest.CPUPercent != 47.1 || m.fetchedAt.IsZero() {
		t.Fatalf("latest = %+v", m.latest)
	}

	view := m.View()
	for _, want := range []string{"hostpulse", "local", "47.1%", "75.0%", "1.250 Mb/s", "postgres"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd = m.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("a tick should trigger a fetch")
	}
	if _, ok := cmd().(snapshotMsg); !ok {
		t.Fatal("tick command did not fetch")
	}
}

func TestModel_FetchErrorKeepsLastSnapshot(t *testing.T) {
	src := &scriptedSource{snap: sampleSnapshot()}
	m := New(src, "remote", time.Second)
	m.Update(m.Init()())

	src.err = errors.New("connection refused")
	msg := m.fetchCmd()()
	if _, ok := msg.(fetchErrMsg); !ok {
		t.Fatalf("got %T, want fetchErrMsg", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("an error should still schedule the next tick")
	}
	if m.latest.CPUPercent != 47.1 {
		t.Fatal("last good snapshot was discarded")
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("view does not show the fetch error")
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(&scriptedSource{}, "local", 0)
	if m.interval != time.Second {
		t.Fatalf("interval = %v, want default 1s", m.interval)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not produce tea.QuitMsg")
	}
	if m.ctx.Err() == nil {
		t.Fatal("quitting should cancel in-flight fetches")
	}
}

func TestLocal(t *testing.T) {
	src := Local(func(context.Context) model.Snapshot { return sampleSnapshot() })
	snap, err := src.Fetch(context.Background())
	if err != nil || snap.NetworkMbps != 1.25 {
		t.Fatalf("Fetch() = %+v, %v", snap, err)
	}
}
