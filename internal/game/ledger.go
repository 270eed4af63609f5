// internal/game/ledger.go
//
// Called-number ledger.
// Responsibilities:
//   - Keep the ordered, duplicate-free history of toggled numbers.
//   - Derive the active set, last called number and total from that history.
//   - Persist {"history": [...]} after every toggle; remove the record on reset.
//
// Notes:
//   - Derived fields are rebuilt from history by setHistory on every mutation,
//     so they can never drift from it.
//   - A persisted history containing duplicates is treated as malformed.

package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/store"
)

type ledgerRecord struct {
	History []Number `json:"history"`
}

// Ledger is the called-number state of one session.
type Ledger struct {
	kv      store.KV
	history []Number
	active  map[Number]struct{}
	last    Number
	hasLast bool
}

// NewLedger hydrates a ledger from kv, starting empty if no valid record exists.
func NewLedger(ctx context.Context, kv store.KV) *Ledger {
	l := &Ledger{kv: kv}
	var rec ledgerRecord
	if loadRecord(ctx, kv, store.KeyCalledState, &rec) {
		if hasDuplicates(rec.History) {
			log.Warn().Str("key", store.KeyCalledState).Msg("history has duplicates; starting empty")
			rec.History = nil
		}
	}
	l.setHistory(rec.History)
	return l
}

// setHistory replaces history and recomputes every derived field.
func (l *Ledger) setHistory(h []Number) {
	l.history = h
	l.active = make(map[Number]struct{}, len(h))
	for _, n := range h {
		l.active[n] = struct{}{}
	}
	l.hasLast = len(h) > 0
	l.last = 0
	if l.hasLast {
		l.last = h[len(h)-1]
	}
}

// ToggleNumber calls n if it is not active, otherwise un-calls it.
// The ledger is persisted afterwards; the returned error reports only that write.
func (l *Ledger) ToggleNumber(ctx context.Context, n Number) error {
	next := make([]Number, 0, len(l.history)+1)
	if l.IsCalled(n) {
		for _, h := range l.history {
			if h != n {
				next = append(next, h)
			}
		}
	} else {
		next = append(append(next, l.history...), n)
	}
	l.setHistory(next)
	log.Debug().Int("number", int(n)).Bool("called", l.IsCalled(n)).Int("total", l.TotalCalled()).Msg("toggled")
	return saveRecord(ctx, l.kv, store.KeyCalledState, ledgerRecord{History: l.history})
}

// ResetBoard clears the ledger and removes its persisted record entirely.
func (l *Ledger) ResetBoard(ctx context.Context) error {
	l.setHistory(nil)
	if err := l.kv.Delete(ctx, store.KeyCalledState); err != nil {
		log.Error().Err(err).Str("key", store.KeyCalledState).Msg("reset failed")
		return fmt.Errorf("reset %s: %w", store.KeyCalledState, err)
	}
	return nil
}

// IsCalled reports whether n is in the active set.
func (l *Ledger) IsCalled(n Number) bool {
	_, ok := l.active[n]
	return ok
}

// History returns a copy of the call order.
func (l *Ledger) History() []Number {
	return append([]Number{}, l.history...)
}

// ActiveSet returns a copy of the set of called numbers.
func (l *Ledger) ActiveSet() map[Number]struct{} {
	out := make(map[Number]struct{}, len(l.active))
	for n := range l.active {
		out[n] = struct{}{}
	}
	return out
}

// LastCalled returns the last element of history; ok is false when nothing is called.
func (l *Ledger) LastCalled() (n Number, ok bool) {
	return l.last, l.hasLast
}

// TotalCalled is the size of the active set.
func (l *Ledger) TotalCalled() int { return len(l.active) }

func hasDuplicates(h []Number) bool {
	seen := make(map[Number]struct{}, len(h))
	for _, n := range h {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}
	return false
}
