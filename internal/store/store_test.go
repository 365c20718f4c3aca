package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapler/fleet-records/internal/store"
)

// openStores returns one instance of every Store implementation, keyed by
// name, so the contract tests below run against all of them.
func openStores(t *testing.T) map[string]store.Store {
	t.Helper()

	sqlite, err := store.OpenSQLite(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)

	return map[string]store.Store{
		"sqlite": sqlite,
		"memory": store.NewMemory(),
	}
}

func TestStore_MissingSlotIsAbsentNotError(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			payload, err := st.Load(context.Background(), store.SlotTrailers)
			require.NoError(t, err)
			assert.Nil(t, payload)
		})
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := []byte(`[{"id":"t1"}]`)

			require.NoError(t, st.Save(ctx, store.SlotTrailers, want))

			got, err := st.Load(ctx, store.SlotTrailers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStore_SaveReplacesWholePayload(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Save(ctx, store.SlotTrailers, []byte(`["first"]`)))
			require.NoError(t, st.Save(ctx, store.SlotTrailers, []byte(`["second"]`)))

			got, err := st.Load(ctx, store.SlotTrailers)
			require.NoError(t, err)
			assert.Equal(t, []byte(`["second"]`), got)
		})
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Save(ctx, store.SlotTrailers, []byte(`["trailers"]`)))

			got, err := st.Load(ctx, store.SlotTractorRefuelings)
			require.NoError(t, err)
			assert.Nil(t, got, "writing one slot must not touch the other")
		})
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")

	first, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, store.SlotTrailers, []byte(`["persisted"]`)))

	second, err := store.OpenSQLite(path)
	require.NoError(t, err)
	got, err := second.Load(ctx, store.SlotTrailers)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["persisted"]`), got)
}
