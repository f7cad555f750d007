package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/progress"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Practice", Action: func() tea.Cmd { pressed = "practice"; return nil }},
		{Label: "Hidden", Disabled: true},
		{Label: "Quit", Action: func() tea.Cmd { pressed = "quit"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("Selected after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "quit" {
		t.Errorf("pressed = %q, want quit", pressed)
	}

	m, _ = m.Update(key('k'))
	if m.Selected != 1 {
		t.Errorf("Selected after k = %d, want 1", m.Selected)
	}
	if !strings.Contains(m.View(), "Practice") {
		t.Error("menu view missing label")
	}
}

func TestButtonRow(t *testing.T) {
	var got string
	row := NewButtonRow(
		NewButton("Knew it", false, func() tea.Cmd { got = "yes"; return nil }),
		NewButton("Missed it", false, func() tea.Cmd { got = "no"; return nil }),
	)
	if !row.Buttons[0].Active || row.Buttons[1].Active {
		t.Fatal("first button should start active")
	}

	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if row.Active != 1 {
		t.Fatalf("Active = %d, want 1", row.Active)
	}
	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got != "no" {
		t.Errorf("pressed %q, want no", got)
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice([]ChoiceOption{{Label: "Casual"}, {Label: "Learner"}, {Label: "Serious"}}, 1)
	if c.Selected != 1 || c.Current != 1 {
		t.Fatalf("Selected=%d Current=%d", c.Selected, c.Current)
	}
	if c.TakeChosen() != -1 {
		t.Error("nothing should be chosen yet")
	}

	c, _ = c.Update(key('j'))
	c, _ = c.Update(key('j'))
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := c.TakeChosen(); got != 2 {
		t.Errorf("TakeChosen() = %d, want 2", got)
	}
	if c.TakeChosen() != -1 {
		t.Error("TakeChosen should clear the choice")
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("minutes", true, 3)
	for _, r := range "4x2" {
		ti, _ = ti.Update(key(r))
	}
	if ti.Value() != "42" {
		t.Errorf("Value() = %q, want 42", ti.Value())
	}
	n, err := ti.NumericValue()
	if err != nil || n != 42 {
		t.Errorf("NumericValue() = %d, %v", n, err)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	over := NewProgressBar("", 1.7, true, 20).View()
	if !strings.Contains(over, "100%") {
		t.Errorf("expected 100%% in %q", over)
	}
	under := NewProgressBar("", -1, true, 20).View()
	if !strings.Contains(under, "0%") {
		t.Errorf("expected 0%% in %q", under)
	}
}

func TestCalendar_RowsOfSeven(t *testing.T) {
	rec := progress.Default()
	rec.History = []progress.DayStat{{Date: "2025-02-03", Answered: 1}}
	days := metrics.CalendarDays(rec, 2025, time.February)

	out := Calendar(days, "2025-02-10")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+len(days)/7 {
		t.Errorf("got %d lines, want %d", len(lines), 1+len(days)/7)
	}
	if !strings.Contains(lines[0], "Su") {
		t.Error("missing weekday header")
	}
}

func TestXPChart(t *testing.T) {
	rec := progress.Default()
	rec.History = []progress.DayStat{{Date: "2025-02-10", Answered: 3, XP: 30}}
	days := metrics.LastSevenDays(rec, time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC))

	out := XPChart(days, 40)
	if strings.Count(out, "\n") != 7 {
		t.Errorf("expected 7 rows, got %q", out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "30") {
		t.Errorf("chart missing today's bar: %q", out)
	}
}
