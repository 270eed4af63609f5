package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/bingo/internal/store"
)

// failingKV reads like an empty store and rejects every write.
type failingKV struct{ store.KV }

var errDiskFull = errors.New("disk full")

func newFailingKV() failingKV { return failingKV{store.NewMemory()} }

func (failingKV) Put(context.Context, string, []byte) error { return errDiskFull }
func (failingKV) Delete(context.Context, string) error      { return errDiskFull }

func toggleAll(t *testing.T, l *Ledger, nums ...Number) {
	t.Helper()
	for _, n := range nums {
		require.NoError(t, l.ToggleNumber(context.Background(), n))
	}
}

func assertLedgerInvariants(t *testing.T, l *Ledger) {
	t.Helper()
	h := l.History()
	set := l.ActiveSet()
	assert.Len(t, set, len(h), "history has duplicates or set drifted")
	for _, n := range h {
		assert.Contains(t, set, n)
	}
	assert.Equal(t, len(set), l.TotalCalled())
	last, ok := l.LastCalled()
	if len(h) == 0 {
		assert.False(t, ok)
	} else {
		assert.True(t, ok)
		assert.Equal(t, h[len(h)-1], last)
	}
}

func TestLedgerStartsEmpty(t *testing.T) {
	l := NewLedger(context.Background(), store.NewMemory())
	assert.Empty(t, l.History())
	assert.Zero(t, l.TotalCalled())
	_, ok := l.LastCalled()
	assert.False(t, ok)
}

func TestToggleNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("calls a number", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 12)
		assert.True(t, l.IsCalled(12))
		assert.Equal(t, []Number{12}, l.History())
		last, ok := l.LastCalled()
		assert.True(t, ok)
		assert.Equal(t, Number(12), last)
		assert.Equal(t, 1, l.TotalCalled())
	})

	t.Run("twice on an uncalled number is the identity", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 3, 40, 71)
		before := l.History()
		beforeLast, _ := l.LastCalled()

		for _, n := range []Number{5, 12, 75} {
			toggleAll(t, l, n, n)
			assert.Equal(t, before, l.History())
			last, ok := l.LastCalled()
			assert.True(t, ok)
			assert.Equal(t, beforeLast, last)
			assertLedgerInvariants(t, l)
		}
	})

	t.Run("untoggling last called falls back to previous", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 10, 25, 25)
		last, ok := l.LastCalled()
		assert.True(t, ok)
		assert.Equal(t, Number(10), last)
		assert.Equal(t, []Number{10}, l.History())
	})

	t.Run("untoggling from the middle keeps order", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 1, 2, 3, 4, 2)
		assert.Equal(t, []Number{1, 3, 4}, l.History())
		last, _ := l.LastCalled()
		assert.Equal(t, Number(4), last)
		assertLedgerInvariants(t, l)
	})

	t.Run("retoggling a called number moves it to the end", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 3, 40, 71, 40, 40)
		assert.Equal(t, []Number{3, 71, 40}, l.History())
		last, _ := l.LastCalled()
		assert.Equal(t, Number(40), last)
	})

	t.Run("untoggling the only number empties the ledger", func(t *testing.T) {
		l := NewLedger(ctx, store.NewMemory())
		toggleAll(t, l, 9, 9)
		_, ok := l.LastCalled()
		assert.False(t, ok)
		assertLedgerInvariants(t, l)
	})
}

func TestLedgerPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("writes history after every toggle", func(t *testing.T) {
		kv := store.NewMemory()
		l := NewLedger(ctx, kv)
		toggleAll(t, l, 7, 63)

		raw, err := kv.Get(ctx, store.KeyCalledState)
		require.NoError(t, err)
		assert.JSONEq(t, `{"history":[7,63]}`, string(raw))

		toggleAll(t, l, 7, 63)
		raw, err = kv.Get(ctx, store.KeyCalledState)
		require.NoError(t, err)
		assert.JSONEq(t, `{"history":[]}`, string(raw))
	})

	t.Run("reloads derived state from history", func(t *testing.T) {
		kv := store.NewMemory()
		require.NoError(t, kv.Put(ctx, store.KeyCalledState, []byte(`{"history":[44,2,19]}`)))

		l := NewLedger(ctx, kv)
		assert.Equal(t, []Number{44, 2, 19}, l.History())
		assert.True(t, l.IsCalled(2))
		last, ok := l.LastCalled()
		assert.True(t, ok)
		assert.Equal(t, Number(19), last)
		assert.Equal(t, 3, l.TotalCalled())
	})

	for name, raw := range map[string]string{
		"garbage":    `{not json`,
		"wrong type": `{"history":"nope"}`,
		"duplicates": `{"history":[5,6,5]}`,
	} {
		t.Run("malformed record starts empty: "+name, func(t *testing.T) {
			kv := store.NewMemory()
			require.NoError(t, kv.Put(ctx, store.KeyCalledState, []byte(raw)))
			l := NewLedger(ctx, kv)
			assert.Empty(t, l.History())
			assertLedgerInvariants(t, l)
		})
	}

	t.Run("write failure is reported but state still changes", func(t *testing.T) {
		l := NewLedger(ctx, newFailingKV())
		err := l.ToggleNumber(ctx, 30)
		assert.ErrorIs(t, err, errDiskFull)
		assert.True(t, l.IsCalled(30))
	})
}

func TestResetBoard(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	l := NewLedger(ctx, kv)
	toggleAll(t, l, 1, 20, 75)

	require.NoError(t, l.ResetBoard(ctx))
	assert.Empty(t, l.History())
	assert.Empty(t, l.ActiveSet())
	_, ok := l.LastCalled()
	assert.False(t, ok)

	_, err := kv.Get(ctx, store.KeyCalledState)
	assert.ErrorIs(t, err, store.ErrNotFound, "record must be removed, not emptied")

	assert.Empty(t, NewLedger(ctx, kv).History())
}

func TestLedgerCopiesAreDetached(t *testing.T) {
	l := NewLedger(context.Background(), store.NewMemory())
	toggleAll(t, l, 8, 9)

	h := l.History()
	h[0] = 99
	set := l.ActiveSet()
	delete(set, 9)

	assert.Equal(t, []Number{8, 9}, l.History())
	assert.True(t, l.IsCalled(9))
}
