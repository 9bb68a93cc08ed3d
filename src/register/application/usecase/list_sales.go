package usecase

import (
	"context"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
)

// ListSalesUseCase lista el historial de ventas del cajero, más recientes
// primero. Solo cabeceras: el reporte del mostrador no necesita renglones.
type ListSalesUseCase struct {
	salesRepo port.SalesRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(salesRepo port.SalesRepository) *ListSalesUseCase {
	return &ListSalesUseCase{salesRepo: salesRepo}
}

// Execute lista las ventas del usuario
func (uc *ListSalesUseCase) Execute(ctx context.Context, userIDRaw string) ([]entity.SalesHeader, error) {
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return nil, entity.ErrInvalidUser
	}
	return uc.salesRepo.ListByUser(ctx, userID)
}
