package port

import (
	"context"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductRepository define el contrato de lectura del catálogo contra el
// store remoto. El orden de List/Search es estable: por nombre ascendente.
type ProductRepository interface {
	// List retorna todos los productos, o solo los de una categoría
	// cuando category no es vacío
	List(ctx context.Context, category string) ([]entity.Product, error)

	// Search busca por coincidencia parcial de nombre, sin distinguir
	// mayúsculas/minúsculas
	Search(ctx context.Context, term string) ([]entity.Product, error)

	// GetByID retorna un producto puntual
	GetByID(ctx context.Context, productID int64) (*entity.Product, error)

	// ListCategories retorna la taxonomía de categorías
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// StockRepository define las operaciones de stock que usa la venta.
// El decremento NO es atómico: se lee el stock actual y se escribe el
// nuevo valor en dos llamadas separadas.
type StockRepository interface {
	// GetStock lee el stock actual del producto (nil = sin control de stock)
	GetStock(ctx context.Context, productID int64) (*decimal.Decimal, error)

	// UpdateStock escribe el nuevo stock del producto
	UpdateStock(ctx context.Context, productID int64, newStock decimal.Decimal) error
}
