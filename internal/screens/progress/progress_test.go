package progress

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	kprogress "github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/store"
)

var testNow = time.Date(2025, 2, 12, 9, 0, 0, 0, time.UTC)

func newTestProgress(t *testing.T) (*ProgressScreen, *screen.Services) {
	t.Helper()
	svc := screen.NewServices(context.Background(), store.NewMemoryEntryRepo(), store.KeysFor("kupu"), nil,
		func() time.Time { return testNow })
	return New(svc), svc
}

func TestProgressScreen_Title(t *testing.T) {
	s, _ := newTestProgress(t)
	if s.Title() != "Progress" {
		t.Errorf("Title = %q, want %q", s.Title(), "Progress")
	}
}

func TestProgressScreen_Overview(t *testing.T) {
	s, svc := newTestProgress(t)
	ctx := context.Background()
	for range 3 {
		svc.Progress.RecordAnswer(ctx, kprogress.Answer{Correct: true})
	}
	svc.Progress.RecordAnswer(ctx, kprogress.Answer{Correct: false})
	s.Refresh()

	view := s.View(100, 40)
	for _, want := range []string{"Level 1", "Kākano", "38", "75%", "3 correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestProgressScreen_RefreshPicksUpChanges(t *testing.T) {
	s, svc := newTestProgress(t)
	svc.Progress.RecordAnswer(context.Background(), kprogress.Answer{Correct: true})
	if s.rec.XP != 0 {
		t.Fatal("screen should hold its own copy until refreshed")
	}
	s.Refresh()
	if s.rec.XP != 12 {
		t.Errorf("XP = %d, want 12", s.rec.XP)
	}
}

func TestProgressScreen_Tabs(t *testing.T) {
	s, _ := newTestProgress(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabBadges {
		t.Fatalf("tab = %v, want badges", s.tab)
	}
	if view := s.View(100, 40); !strings.Contains(view, "0 of 6 unlocked") {
		t.Error("badges view missing unlocked count")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabCalendar {
		t.Fatalf("tab = %v, want calendar", s.tab)
	}
	if view := s.View(100, 40); !strings.Contains(view, "February 2025") {
		t.Error("calendar view missing month title")
	}
	if len(s.KeyHints()) != 3 {
		t.Errorf("calendar KeyHints length = %d, want 3", len(s.KeyHints()))
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabLessons {
		t.Fatalf("tab = %v, want lessons", s.tab)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabOverview {
		t.Errorf("tab = %v, want overview after wrapping", s.tab)
	}
}

func TestProgressScreen_LessonsTab(t *testing.T) {
	s, svc := newTestProgress(t)
	ctx := context.Background()
	svc.Progress.RecordAnswer(ctx, kprogress.Answer{Correct: true, CardID: "tahi", LessonID: "numbers"})
	svc.Progress.RecordAnswer(ctx, kprogress.Answer{Correct: true, CardID: "tahi", LessonID: "numbers"})
	s.Refresh()
	s.tab = tabLessons

	view := s.View(100, 40)
	for _, want := range []string{"Ngā mihi (Greetings)", "0/0 learned · 8 cards in deck", "1/1 learned · 10 cards in deck"} {
		if !strings.Contains(view, want) {
			t.Errorf("lessons view missing %q", want)
		}
	}
}

func TestProgressScreen_MonthNavigation(t *testing.T) {
	s, _ := newTestProgress(t)
	s.tab = tabCalendar

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := s.month.Format("2006-01"); got != "2025-01" {
		t.Errorf("month = %s, want 2025-01", got)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := s.month.Format("2006-01"); got != "2025-03" {
		t.Errorf("month = %s, want 2025-03", got)
	}

	s.tab = tabOverview
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := s.month.Format("2006-01"); got != "2025-03" {
		t.Error("left outside the calendar tab must not change month")
	}
}

func TestProgressScreen_EscPops(t *testing.T) {
	s, _ := newTestProgress(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
