// Package vocab keeps the learner's saved flashcards, persisted as a single
// JSON object keyed by card id.
package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

// Card is a saved flashcard.
type Card struct {
	ID    string `json:"id" validate:"required"`
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the card can be saved.
func (c Card) Validate() error {
	c.ID = strings.TrimSpace(c.ID)
	c.Front = strings.TrimSpace(c.Front)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid card: %w", err)
	}
	return nil
}

// Store is the set of saved cards. Every mutation writes the whole set.
type Store struct {
	repo  store.EntryRepo
	key   string
	log   *zap.Logger
	cards map[string]Card
}

// NewStore creates an empty Store. Call Load to read the persisted set.
func NewStore(repo store.EntryRepo, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		repo:  repo,
		key:   key,
		log:   log.With(zap.String("key", key)),
		cards: map[string]Card{},
	}
}

// Load reads the persisted set. A missing or unreadable entry loads empty.
func (s *Store) Load(ctx context.Context) {
	s.cards = map[string]Card{}

	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("read vocab", zap.Error(err))
		}
		return
	}
	cards, err := Decode(raw)
	if err != nil {
		s.log.Warn("decode vocab, starting empty", zap.Error(err))
		return
	}
	s.cards = cards
}

// Decode parses a stored vocab object. Entries without an id take the id
// of their key.
func Decode(raw []byte) (map[string]Card, error) {
	var cards map[string]Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = map[string]Card{}
	}
	for id, c := range cards {
		if c.ID == "" {
			c.ID = id
			cards[id] = c
		}
	}
	return cards, nil
}

// IsSaved reports whether a card with id is saved.
func (s *Store) IsSaved(id string) bool {
	_, ok := s.cards[id]
	return ok
}

// Get returns the saved card with id.
func (s *Store) Get(id string) (Card, bool) {
	c, ok := s.cards[id]
	return c, ok
}

// Len returns the number of saved cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// List returns the saved cards ordered by id.
func (s *Store) List() []Card {
	out := make([]Card, 0, len(s.cards))
	for _, id := range slices.Sorted(maps.Keys(s.cards)) {
		out = append(out, s.cards[id])
	}
	return out
}

// Cards returns a copy of the saved set keyed by id.
func (s *Store) Cards() map[string]Card {
	return maps.Clone(s.cards)
}

// Save adds card, replacing any saved card with the same id.
func (s *Store) Save(ctx context.Context, card Card) {
	s.cards[card.ID] = card
	s.persist(ctx)
}

// Unsave removes the card with id. Removing an unsaved id is a no-op.
func (s *Store) Unsave(ctx context.Context, id string) {
	delete(s.cards, id)
	s.persist(ctx)
}

// Toggle saves card if it is not saved and removes it otherwise. It reports
// whether the card is saved afterwards.
func (s *Store) Toggle(ctx context.Context, card Card) bool {
	if s.IsSaved(card.ID) {
		s.Unsave(ctx, card.ID)
		return false
	}
	s.Save(ctx, card)
	return true
}

// Clear removes every saved card.
func (s *Store) Clear(ctx context.Context) {
	s.cards = map[string]Card{}
	s.persist(ctx)
}

// Replace swaps in cards wholesale, e.g. after an import.
func (s *Store) Replace(ctx context.Context, cards map[string]Card) {
	s.cards = maps.Clone(cards)
	if s.cards == nil {
		s.cards = map[string]Card{}
	}
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.cards)
	if err != nil {
		s.log.Warn("encode vocab", zap.Error(err))
		return
	}
	if err := s.repo.Put(ctx, s.key, raw); err != nil {
		s.log.Warn("write vocab", zap.Error(err))
	}
}
