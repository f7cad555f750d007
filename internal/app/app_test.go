package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/screens/home"
	"github.com/kupu-app/kupu/internal/store"
)

func newTestModel(t *testing.T) (AppModel, *screen.Services) {
	t.Helper()
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	svc := screen.NewServices(context.Background(), store.NewMemoryEntryRepo(), store.KeysFor("kupu"), nil,
		func() time.Time { return now })
	return newAppModel(Options{Services: svc}), svc
}

// send delivers msg and then any router message its command produces.
func send(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestAppStartsOnHome(t *testing.T) {
	m, _ := newTestModel(t)
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppNavigatesAndReturnsHome(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Daily Goal", m.router.Active().Title())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppViewShowsHeaderStats(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Progress.RecordAnswer(context.Background(), progress.Answer{Correct: true})

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.View().AltScreen)
	frame := m.render()
	assert.Contains(t, frame, "12 XP")
	assert.Contains(t, frame, "1 day")
}

func TestAppViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestRunRequiresServices(t *testing.T) {
	assert.Error(t, Run(Options{}))
}

func TestAppSplashHandsOverToHome(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	svc := screen.NewServices(context.Background(), store.NewMemoryEntryRepo(), store.KeysFor("kupu"), nil,
		func() time.Time { return now })
	m := newAppModel(Options{Services: svc, Splash: true})
	assert.Equal(t, "", m.router.Active().Title())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}
