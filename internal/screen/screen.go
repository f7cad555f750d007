package screen

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/queue"
	"github.com/kupu-app/kupu/internal/store"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/vocab"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens that re-read shared state when they
// become active again after the screen above them is popped.
type Refresher interface {
	Refresh()
}

// Services are the long-lived stores every screen may read or mutate.
type Services struct {
	Progress *progress.Store
	Outside  *progress.OutsideStore
	Vocab    *vocab.Store
	Queue    *queue.Store
	Now      func() time.Time
}

// Today returns the current instant from the configured clock.
func (s *Services) Today() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// NewServices builds every store over repo and loads its persisted state.
// A nil now uses the wall clock.
func NewServices(ctx context.Context, repo store.EntryRepo, keys store.Keys, log *zap.Logger, now func() time.Time) *Services {
	if now == nil {
		now = time.Now
	}
	svc := &Services{
		Progress: progress.NewStore(repo, keys.Progress, log, progress.WithClock(now)),
		Outside:  progress.NewOutsideStore(repo, keys.Outside, log),
		Vocab:    vocab.NewStore(repo, keys.Vocab, log),
		Queue:    queue.NewStore(repo, keys.Queue, log),
		Now:      now,
	}
	svc.Progress.Load(ctx)
	svc.Outside.Load(ctx)
	svc.Vocab.Load(ctx)
	svc.Queue.Load(ctx)
	return svc
}
