package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"
)

// ListProductsUseCase lista el catálogo con filtro opcional de categoría.
// Si el store remoto falla, degrada al snapshot local cuando existe;
// nunca inventa inventario: sin snapshot se reporta el error de fetch.
type ListProductsUseCase struct {
	productRepo port.ProductRepository
	snapshot    *cache.CatalogSnapshot
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository, snapshot *cache.CatalogSnapshot) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		snapshot:    snapshot,
	}
}

// Execute lista productos. category vacío = todo el catálogo.
// El orden es el del store (por nombre); el filtro preserva el orden relativo.
func (uc *ListProductsUseCase) Execute(ctx context.Context, category string) ([]entity.Product, error) {
	if uc.productRepo != nil {
		products, err := uc.productRepo.List(ctx, category)
		if err == nil {
			// Refresh del snapshot local solo con el catálogo completo,
			// para no pisar la copia con un subconjunto filtrado
			if uc.snapshot != nil && category == "" {
				if saveErr := uc.snapshot.Save(products); saveErr != nil {
					log.Printf("⚠️  Warning: could not refresh catalog snapshot: %v", saveErr)
				}
			}
			return products, nil
		}
		log.Printf("⚠️  Warning: remote catalog fetch failed, falling back to local snapshot: %v", err)
	}

	if uc.snapshot == nil {
		return nil, fmt.Errorf("%w: no local snapshot configured", entity.ErrCatalogFetch)
	}

	products := uc.snapshot.LoadOrDefaults()
	return FilterByCategory(products, category), nil
}

// FilterByCategory filtra en memoria preservando el orden relativo de la lista
func FilterByCategory(products []entity.Product, category string) []entity.Product {
	if category == "" {
		return products
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByName filtra en memoria por substring de nombre, case-insensitive
func FilterByName(products []entity.Product, term string) []entity.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
