package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r *testRecord) GetID() int   { return r.ID }
func (r *testRecord) SetID(id int) { r.ID = id }

const testCollection core.Collection = "widgets"

func newTestStore(t *testing.T) *StoreClient {
	t.Helper()
	conf := &config.Configuration{}
	conf.Store.Dir = t.TempDir()
	conf.Store.LockTimeoutMs = 100

	store, cleanup, err := NewStoreClient(zap.NewNop(), conf, &telemetry.Metric{})
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return store
}

func TestCollection_AppendAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	for i, name := range []string{"a", "b", "c"} {
		err := col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
			rec, err := tx.Append(&testRecord{Name: name})
			if err != nil {
				return err
			}
			assert.Equal(t, i+1, rec.GetID())
			return nil
		})
		require.NoError(t, err)
	}

	records, err := col.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestCollection_IDsNeverReused(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	var lastID int
	err := col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
		rec, err := tx.Append(&testRecord{Name: "first"})
		lastID = rec.GetID()
		return err
	})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, lastID))

	err = col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
		rec, err := tx.Append(&testRecord{Name: "second"})
		if err != nil {
			return err
		}
		// 刪除後不回收 ID
		assert.Equal(t, lastID+1, rec.GetID())
		return nil
	})
	require.NoError(t, err)
}

func TestCollection_MutateErrorDoesNotPersist(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	sentinel := assert.AnError
	err := col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
		if _, err := tx.Append(&testRecord{Name: "ghost"}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	records, err := col.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_UpdateAndGet(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	require.NoError(t, col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
		_, err := tx.Append(&testRecord{Name: "before"})
		return err
	}))

	updated, err := col.Update(ctx, 1, func(rec *testRecord) error {
		rec.Name = "after"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)

	got, err := col.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)

	_, err = col.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = col.Update(ctx, 999, func(rec *testRecord) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreClient_LockTimeout(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	release, err := store.Acquire(ctx, testCollection)
	require.NoError(t, err)
	defer release()

	err = col.Mutate(ctx, func(tx *Tx[*testRecord]) error { return nil })
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestStoreClient_ConcurrentAppendsGetDistinctIDs(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	ids := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
				rec, err := tx.Append(&testRecord{Name: "w"})
				if err != nil {
					return err
				}
				ids <- rec.GetID()
				return nil
			})
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestStoreClient_WriteIsAtomicRename(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, testCollection)
	ctx := context.Background()

	require.NoError(t, col.Mutate(ctx, func(tx *Tx[*testRecord]) error {
		_, err := tx.Append(&testRecord{Name: "solo"})
		return err
	}))

	raw, err := os.ReadFile(filepath.Join(store.Dir(), string(testCollection)+".json"))
	require.NoError(t, err)

	var records []testRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 1)

	// 不殘留 tmp 檔
	_, err = os.Stat(filepath.Join(store.Dir(), string(testCollection)+".json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
