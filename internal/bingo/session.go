// internal/bingo/session.go
//
// Session is the single surface views and input collaborators talk to.
// It owns one ledger, one card registry and one win engine, all hydrated from
// the same key/value store when the session is opened, and holds no state of
// its own beyond those.
//
// Queries flow Session -> sub-store -> derived value. Every mutation touches
// exactly one sub-store, which persists itself before the call returns.
//
// A Session is not safe for concurrent use; callers drive it from one goroutine.

package bingo

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/columns"
	"github.com/robalobadob/bingo/internal/game"
	"github.com/robalobadob/bingo/internal/store"
)

// Session aggregates the engine stores.
type Session struct {
	ledger *game.Ledger
	cards  *game.Registry
	engine *game.Engine
}

// Open hydrates every store from kv. Missing or malformed records yield
// empty/default state; Open itself never fails.
func Open(ctx context.Context, kv store.KV) *Session {
	ledger := game.NewLedger(ctx, kv)
	s := &Session{
		ledger: ledger,
		cards:  game.NewRegistry(ctx, kv),
		engine: game.NewEngine(ctx, kv, ledger),
	}
	log.Info().
		Int("called", s.ledger.TotalCalled()).
		Int("cards", s.cards.Len()).
		Str("mode", string(s.engine.ActiveMode())).
		Msg("session loaded")
	return s
}

// --- called numbers ---

func (s *Session) ToggleNumber(ctx context.Context, n game.Number) error {
	return s.ledger.ToggleNumber(ctx, n)
}

func (s *Session) ResetBoard(ctx context.Context) error {
	return s.ledger.ResetBoard(ctx)
}

func (s *Session) IsCalled(n game.Number) bool         { return s.ledger.IsCalled(n) }
func (s *Session) ActiveSet() map[game.Number]struct{} { return s.ledger.ActiveSet() }
func (s *Session) History() []game.Number              { return s.ledger.History() }
func (s *Session) LastCalled() (game.Number, bool)     { return s.ledger.LastCalled() }
func (s *Session) TotalCalled() int                    { return s.ledger.TotalCalled() }

// --- cards ---

// AddCard registers a card and returns its id.
func (s *Session) AddCard(ctx context.Context, name string, grid game.Grid) (string, error) {
	c, err := s.cards.AddCard(ctx, name, grid)
	return c.ID, err
}

func (s *Session) RemoveCard(ctx context.Context, id string) error {
	return s.cards.RemoveCard(ctx, id)
}

func (s *Session) UpdateCard(ctx context.Context, id, name string, grid game.Grid) error {
	return s.cards.UpdateCard(ctx, id, name, grid)
}

func (s *Session) Cards() []game.Card               { return s.cards.Cards() }
func (s *Session) Card(id string) (game.Card, bool) { return s.cards.Card(id) }

// GenerateRandomGrid returns a fresh legal card face; it does not register it.
func (s *Session) GenerateRandomGrid() game.Grid { return game.GenerateRandomGrid() }

// --- patterns ---

// SetActiveMode switches the winning pattern; unknown ids are ignored (applied=false).
func (s *Session) SetActiveMode(ctx context.Context, id game.ModeID) (applied bool, err error) {
	return s.engine.SetActiveMode(ctx, id)
}

func (s *Session) ActiveMode() game.ModeID           { return s.engine.ActiveMode() }
func (s *Session) ActivePattern() game.Pattern       { return s.engine.ActivePattern() }
func (s *Session) Patterns() []game.Pattern          { return game.Catalog() }
func (s *Session) IsCellInPattern(row, col int) bool { return s.engine.IsCellInPattern(row, col) }
func (s *Session) CheckCardWin(card game.Card) bool  { return s.engine.CheckCardWin(card) }
func (s *Session) WinningCards(cards []game.Card) []game.Card {
	return s.engine.WinningCards(cards)
}

// RegisteredWinners evaluates every registered card.
func (s *Session) RegisteredWinners() []game.Card {
	return s.engine.WinningCards(s.cards.Cards())
}

// --- columns ---

func (s *Session) Columns() []columns.Column        { return columns.All() }
func (s *Session) LetterFor(n game.Number) string   { return columns.LetterFor(int(n)) }
func (s *Session) ColorFor(n game.Number) string    { return columns.ColorFor(int(n)) }
func (s *Session) ColorForColumnIndex(i int) string { return columns.ColorForColumnIndex(i) }
