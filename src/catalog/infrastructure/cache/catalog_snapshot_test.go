package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Manzana Roja", Price: decimal.RequireFromString("5.20"), Unit: "kg", Category: "frutas"},
		{ID: 2, Name: "Plátano Seda", Price: decimal.RequireFromString("2.50"), Unit: "kg", Category: "tropicales"},
	}
}

func TestCatalogSnapshot_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos_products_v1.json")
	snapshot := NewCatalogSnapshot(path, time.Hour)

	require.NoError(t, snapshot.Save(snapshotProducts()))

	loaded, err := snapshot.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Manzana Roja", loaded[0].Name)
	assert.True(t, loaded[0].Price.Equal(decimal.RequireFromString("5.20")))
	assert.Equal(t, "tropicales", loaded[1].Category)
}

func TestCatalogSnapshot_MissingFile(t *testing.T) {
	snapshot := NewCatalogSnapshot(filepath.Join(t.TempDir(), "missing.json"), time.Hour)

	_, err := snapshot.Load()
	assert.Error(t, err)
}

func TestCatalogSnapshot_StaleAfterTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos_products_v1.json")
	snapshot := NewCatalogSnapshot(path, time.Nanosecond)

	require.NoError(t, snapshot.Save(snapshotProducts()))
	time.Sleep(time.Millisecond)

	products, err := snapshot.Load()
	assert.ErrorIs(t, err, ErrSnapshotStale)
	assert.Len(t, products, 2, "stale snapshot still returns the products")
}

func TestCatalogSnapshot_ZeroTTLNeverStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos_products_v1.json")
	snapshot := NewCatalogSnapshot(path, 0)

	require.NoError(t, snapshot.Save(snapshotProducts()))

	_, err := snapshot.Load()
	assert.NoError(t, err)
}

func TestCatalogSnapshot_LoadOrDefaults(t *testing.T) {
	// Sin archivo: catálogo semilla
	snapshot := NewCatalogSnapshot(filepath.Join(t.TempDir(), "missing.json"), time.Hour)
	assert.Len(t, snapshot.LoadOrDefaults(), len(DefaultProducts()))

	// Archivo corrupto: catálogo semilla
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	snapshot = NewCatalogSnapshot(path, time.Hour)
	assert.Len(t, snapshot.LoadOrDefaults(), len(DefaultProducts()))

	// Snapshot válido: se usa el snapshot
	path = filepath.Join(t.TempDir(), "pos_products_v1.json")
	snapshot = NewCatalogSnapshot(path, time.Hour)
	require.NoError(t, snapshot.Save(snapshotProducts()))
	assert.Len(t, snapshot.LoadOrDefaults(), 2)
}
