// internal/game/engine.go
//
// Win-detection engine for a bingo session.
// Responsibilities:
//   - Hold the active game mode (one of the catalog ids) and persist it.
//   - Answer pattern membership for a cell.
//   - Evaluate cards against the active pattern using the ledger's called numbers.
//
// Notes:
//   - Unknown mode ids are ignored; SetActiveMode reports whether it applied.
//   - The engine does not own cards; callers pass them in.
//   - A FREE cell satisfies every pattern regardless of calls.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/store"
)

// CalledSet is the view of the ledger the engine needs.
type CalledSet interface {
	IsCalled(n Number) bool
}

// Engine evaluates cards against the active pattern.
type Engine struct {
	kv     store.KV
	called CalledSet
	mode   ModeID
}

// NewEngine hydrates the active mode from kv, defaulting to ModeComplete
// when the record is absent or names no catalog entry.
func NewEngine(ctx context.Context, kv store.KV, called CalledSet) *Engine {
	e := &Engine{kv: kv, called: called, mode: ModeComplete}
	raw, err := kv.Get(ctx, store.KeyGameMode)
	switch {
	case err == nil:
		if _, ok := LookupPattern(ModeID(raw)); ok {
			e.mode = ModeID(raw)
		} else {
			log.Warn().Str("key", store.KeyGameMode).Str("mode", string(raw)).Msg("unknown mode; using default")
		}
	case !errors.Is(err, store.ErrNotFound):
		log.Warn().Err(err).Str("key", store.KeyGameMode).Msg("record unreadable; using default")
	}
	return e
}

// SetActiveMode selects id and persists it. Ids outside the catalog are ignored
// and applied is false; the previous mode stays active.
func (e *Engine) SetActiveMode(ctx context.Context, id ModeID) (applied bool, err error) {
	if _, ok := LookupPattern(id); !ok {
		log.Debug().Str("mode", string(id)).Msg("ignoring unknown mode")
		return false, nil
	}
	e.mode = id
	if err := e.kv.Put(ctx, store.KeyGameMode, []byte(id)); err != nil {
		log.Error().Err(err).Str("key", store.KeyGameMode).Msg("persist failed")
		return true, fmt.Errorf("persist %s: %w", store.KeyGameMode, err)
	}
	return true, nil
}

// ActiveMode returns the selected mode id.
func (e *Engine) ActiveMode() ModeID { return e.mode }

// ActivePattern returns the catalog entry for the active mode, or the first
// catalog entry if it does not resolve.
func (e *Engine) ActivePattern() Pattern {
	if p, ok := LookupPattern(e.mode); ok {
		return p
	}
	return catalog[0].clone()
}

// IsCellInPattern reports whether (row, col) belongs to the active pattern.
func (e *Engine) IsCellInPattern(row, col int) bool {
	return e.ActivePattern().Contains(row, col)
}

// CheckCardWin reports whether every cell of the active pattern on card is
// FREE or called.
func (e *Engine) CheckCardWin(card Card) bool {
	return e.wins(e.ActivePattern(), card)
}

// WinningCards filters cards down to the winners, preserving order.
func (e *Engine) WinningCards(cards []Card) []Card {
	p := e.ActivePattern()
	out := []Card{}
	for _, c := range cards {
		if e.wins(p, c) {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) wins(p Pattern, card Card) bool {
	for _, at := range p.Cells {
		cell := card.Grid[at.Row][at.Col]
		if !cell.IsFree() && !e.called.IsCalled(cell.Number()) {
			return false
		}
	}
	return true
}
