package usecase

import (
	"context"
	"log"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"
)

// ListCategoriesUseCase retorna la taxonomía de categorías para el selector
// del mostrador. Con el store caído degrada a la taxonomía por defecto.
type ListCategoriesUseCase struct {
	productRepo port.ProductRepository
}

// NewListCategoriesUseCase crea una nueva instancia del caso de uso
func NewListCategoriesUseCase(productRepo port.ProductRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{productRepo: productRepo}
}

// Execute lista las categorías del catálogo
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]entity.Category, error) {
	if uc.productRepo != nil {
		categories, err := uc.productRepo.ListCategories(ctx)
		if err == nil {
			return categories, nil
		}
		log.Printf("⚠️  Warning: remote categories fetch failed, using defaults: %v", err)
	}
	return cache.DefaultCategories(), nil
}
