package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"
)

// SearchProductsUseCase busca productos por nombre (substring, case-insensitive)
type SearchProductsUseCase struct {
	productRepo port.ProductRepository
	snapshot    *cache.CatalogSnapshot
}

// NewSearchProductsUseCase crea una nueva instancia del caso de uso
func NewSearchProductsUseCase(productRepo port.ProductRepository, snapshot *cache.CatalogSnapshot) *SearchProductsUseCase {
	return &SearchProductsUseCase{
		productRepo: productRepo,
		snapshot:    snapshot,
	}
}

// Execute busca en el store remoto; si falla degrada al snapshot local
func (uc *SearchProductsUseCase) Execute(ctx context.Context, term string) ([]entity.Product, error) {
	if uc.productRepo != nil {
		products, err := uc.productRepo.Search(ctx, term)
		if err == nil {
			return products, nil
		}
		log.Printf("⚠️  Warning: remote catalog search failed, falling back to local snapshot: %v", err)
	}

	if uc.snapshot == nil {
		return nil, fmt.Errorf("%w: no local snapshot configured", entity.ErrCatalogFetch)
	}

	return FilterByName(uc.snapshot.LoadOrDefaults(), term), nil
}
