package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo/internal/store"
)

// loadRecord decodes the JSON record under key into v.
// Absent, unreadable and malformed records all report false; only the last two are logged.
func loadRecord(ctx context.Context, kv store.KV, key string, v any) bool {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("record unreadable; starting empty")
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("record malformed; starting empty")
		return false
	}
	return true
}

// saveRecord writes v as JSON under key.
func saveRecord(ctx context.Context, kv store.KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("persist failed")
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
