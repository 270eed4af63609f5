// internal/store/store.go
//
// Persistence contract for the bingo engine.
// Every engine store (ledger, card registry, game mode) owns exactly one
// record and reads/writes it through this byte-addressable key/value interface.

package store

import (
	"context"
	"errors"
)

// Record keys used by the engine.
const (
	KeyCalledState = "bingo-state"
	KeyCards       = "bingo-cards"
	KeyGameMode    = "bingo-gamemode"
)

// ErrNotFound is returned by Get when the key holds no record.
var ErrNotFound = errors.New("not found")

// KV defines the persistence interface for engine records.
// Implementations may be backed by memory (this package), SQLite, etc.
type KV interface {
	// Get returns the raw record stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put persists or replaces the record stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
