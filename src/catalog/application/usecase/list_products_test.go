package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductRepo implementa port.ProductRepository con una lista fija
type mockProductRepo struct {
	products []entity.Product
	err      error
}

func (m *mockProductRepo) List(_ context.Context, category string) ([]entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return FilterByCategory(m.products, category), nil
}

func (m *mockProductRepo) Search(_ context.Context, term string) ([]entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return FilterByName(m.products, term), nil
}

func (m *mockProductRepo) GetByID(_ context.Context, productID int64) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == productID {
			found := p
			return &found, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (m *mockProductRepo) ListCategories(_ context.Context) ([]entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return nil, nil
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: 17, Name: "Limón", Price: decimal.RequireFromString("4.50"), Unit: "kg", Category: "citricos"},
		{ID: 13, Name: "Mandarina", Price: decimal.RequireFromString("3.50"), Unit: "kg", Category: "citricos"},
		{ID: 1, Name: "Manzana Roja", Price: decimal.RequireFromString("5.20"), Unit: "kg", Category: "frutas"},
		{ID: 7, Name: "Naranja Jugo", Price: decimal.RequireFromString("3.00"), Unit: "kg", Category: "citricos"},
	}
}

func tempSnapshot(t *testing.T) *cache.CatalogSnapshot {
	t.Helper()
	return cache.NewCatalogSnapshot(filepath.Join(t.TempDir(), "pos_products_v1.json"), time.Hour)
}

func TestListProducts_RemoteFirst(t *testing.T) {
	repo := &mockProductRepo{products: testProducts()}
	uc := NewListProductsUseCase(repo, tempSnapshot(t))

	products, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestListProducts_CategoryFilterPreservesOrder(t *testing.T) {
	repo := &mockProductRepo{products: testProducts()}
	uc := NewListProductsUseCase(repo, tempSnapshot(t))

	products, err := uc.Execute(context.Background(), "citricos")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Limón", products[0].Name)
	assert.Equal(t, "Mandarina", products[1].Name)
	assert.Equal(t, "Naranja Jugo", products[2].Name)
}

func TestListProducts_FullListRefreshesSnapshot(t *testing.T) {
	snapshot := tempSnapshot(t)
	repo := &mockProductRepo{products: testProducts()}
	uc := NewListProductsUseCase(repo, snapshot)

	_, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)

	saved, err := snapshot.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 4)
}

func TestListProducts_FilteredListDoesNotRefreshSnapshot(t *testing.T) {
	snapshot := tempSnapshot(t)
	repo := &mockProductRepo{products: testProducts()}
	uc := NewListProductsUseCase(repo, snapshot)

	_, err := uc.Execute(context.Background(), "citricos")
	require.NoError(t, err)

	_, err = snapshot.Load()
	assert.Error(t, err, "a filtered fetch must not overwrite the full snapshot")
}

func TestListProducts_FallsBackToSnapshotOnRemoteFailure(t *testing.T) {
	snapshot := tempSnapshot(t)
	require.NoError(t, snapshot.Save(testProducts()))

	repo := &mockProductRepo{err: errors.New("store down")}
	uc := NewListProductsUseCase(repo, snapshot)

	products, err := uc.Execute(context.Background(), "citricos")
	require.NoError(t, err)
	assert.Len(t, products, 3, "filter applies over the snapshot copy")
}

func TestListProducts_NoSnapshotFallsBackToDefaults(t *testing.T) {
	repo := &mockProductRepo{err: errors.New("store down")}
	uc := NewListProductsUseCase(repo, tempSnapshot(t))

	// Sin snapshot guardado aún: se usa el catálogo semilla, nunca se inventa
	products, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, len(cache.DefaultProducts()))
}

func TestSearchProducts_CaseInsensitive(t *testing.T) {
	repo := &mockProductRepo{products: testProducts()}
	uc := NewSearchProductsUseCase(repo, tempSnapshot(t))

	products, err := uc.Execute(context.Background(), "man")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mandarina", products[0].Name)
	assert.Equal(t, "Manzana Roja", products[1].Name)
}

func TestSearchProducts_FallsBackToSnapshot(t *testing.T) {
	snapshot := tempSnapshot(t)
	require.NoError(t, snapshot.Save(testProducts()))

	repo := &mockProductRepo{err: errors.New("store down")}
	uc := NewSearchProductsUseCase(repo, snapshot)

	products, err := uc.Execute(context.Background(), "limón")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Limón", products[0].Name)
}

func TestListCategories_DefaultsOnRemoteFailure(t *testing.T) {
	uc := NewListCategoriesUseCase(&mockProductRepo{err: errors.New("store down")})

	categories, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(cache.DefaultCategories()))
}

func TestFilterByName_EmptyTermReturnsAll(t *testing.T) {
	products := testProducts()
	assert.Equal(t, products, FilterByName(products, ""))
	assert.Equal(t, products, FilterByCategory(products, ""))
}
