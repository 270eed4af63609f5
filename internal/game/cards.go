// internal/game/cards.go
//
// Card registry: ordered CRUD over named grids.
// The full registry is written to the bingo-cards record on every mutation.

package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/store"
)

// Registry holds the session's cards in insertion order.
type Registry struct {
	kv    store.KV
	cards []Card
	newID func() string
}

// NewRegistry hydrates a registry from kv, starting empty if no valid record exists.
func NewRegistry(ctx context.Context, kv store.KV) *Registry {
	r := &Registry{kv: kv, newID: uuid.NewString}
	var saved []Card
	if loadRecord(ctx, kv, store.KeyCards, &saved) {
		r.cards = saved
	}
	return r
}

// AddCard appends a new card with a fresh id and persists the registry.
// The card is registered even when the write fails.
func (r *Registry) AddCard(ctx context.Context, name string, grid Grid) (Card, error) {
	c := Card{ID: r.newID(), Name: name, Grid: grid}
	r.cards = append(r.cards, c)
	log.Debug().Str("card", c.ID).Str("name", name).Msg("card added")
	return c, r.save(ctx)
}

// RemoveCard drops the card with id, if any, and persists the registry.
func (r *Registry) RemoveCard(ctx context.Context, id string) error {
	kept := make([]Card, 0, len(r.cards))
	for _, c := range r.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.cards = kept
	return r.save(ctx)
}

// UpdateCard replaces name and grid of the card with id in place.
// Unknown ids are ignored and nothing is written.
func (r *Registry) UpdateCard(ctx context.Context, id, name string, grid Grid) error {
	for i := range r.cards {
		if r.cards[i].ID == id {
			r.cards[i].Name = name
			r.cards[i].Grid = grid
			return r.save(ctx)
		}
	}
	return nil
}

// Card looks up a card by id.
func (r *Registry) Card(id string) (Card, bool) {
	for _, c := range r.cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Cards returns a copy of the registry in order.
func (r *Registry) Cards() []Card {
	return append([]Card{}, r.cards...)
}

// Len is the number of registered cards.
func (r *Registry) Len() int { return len(r.cards) }

func (r *Registry) save(ctx context.Context) error {
	cards := r.cards
	if cards == nil {
		cards = []Card{}
	}
	return saveRecord(ctx, r.kv, store.KeyCards, cards)
}
