package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// KVSuite runs the same contract checks against every KV implementation.
type KVSuite struct {
	suite.Suite
	newKV func() KV
	kv    KV
	ctx   context.Context
}

func (s *KVSuite) SetupTest() {
	s.kv = s.newKV()
	s.ctx = context.Background()
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, &KVSuite{newKV: NewMemory})
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, &KVSuite{newKV: func() KV {
		db, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "bingo.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db
	}})
}

func (s *KVSuite) TestGetMissing() {
	_, err := s.kv.Get(s.ctx, KeyCards)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *KVSuite) TestPutGetOverwrite() {
	s.Require().NoError(s.kv.Put(s.ctx, KeyGameMode, []byte("L")))
	got, err := s.kv.Get(s.ctx, KeyGameMode)
	s.Require().NoError(err)
	s.Equal("L", string(got))

	s.Require().NoError(s.kv.Put(s.ctx, KeyGameMode, []byte("X")))
	got, err = s.kv.Get(s.ctx, KeyGameMode)
	s.Require().NoError(err)
	s.Equal("X", string(got))
}

func (s *KVSuite) TestDelete() {
	s.Run("removes an existing record", func() {
		s.Require().NoError(s.kv.Put(s.ctx, KeyCalledState, []byte(`{"history":[1]}`)))
		s.Require().NoError(s.kv.Delete(s.ctx, KeyCalledState))
		_, err := s.kv.Get(s.ctx, KeyCalledState)
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("absent key is not an error", func() {
		s.NoError(s.kv.Delete(s.ctx, "nope"))
	})
}

func (s *KVSuite) TestValuesAreCopied() {
	in := []byte("abc")
	s.Require().NoError(s.kv.Put(s.ctx, "k", in))
	in[0] = 'z'

	out, err := s.kv.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("abc", string(out))
	out[1] = 'z'

	again, err := s.kv.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("abc", string(again))
}

func TestSQLiteReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bingo.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Put(ctx, KeyGameMode, []byte("U")))
	require.NoError(t, db.Close())

	// Migrations are idempotent on reopen.
	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get(ctx, KeyGameMode)
	require.NoError(t, err)
	require.Equal(t, "U", string(got))
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, "bingo.db?_busy_timeout=5000&_journal_mode=WAL", withDefaults("bingo.db"))
	assert.Equal(t, "file:bingo.db?cache=shared&_busy_timeout=5000&_journal_mode=WAL", withDefaults("file:bingo.db?cache=shared"))
}

func TestDBPath(t *testing.T) {
	assert.Equal(t, "data/bingo.db", dbPath("data/bingo.db"))
	assert.Equal(t, "data/bingo.db", dbPath("file:data/bingo.db?cache=shared"))
}

func TestSQLiteOpensDSNWithQuery(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "nested", "bingo.db") + "?cache=shared"

	db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))

	require.NoError(t, db.Put(ctx, KeyGameMode, []byte("O")))
	got, err := db.Get(ctx, KeyGameMode)
	require.NoError(t, err)
	assert.Equal(t, "O", string(got))
}
