package usecase

import (
	"context"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
)

// ListMovementsUseCase lista los movimientos de caja del cajero actual,
// más recientes primero
type ListMovementsUseCase struct {
	movementRepo port.CashMovementRepository
}

// NewListMovementsUseCase crea una nueva instancia del caso de uso
func NewListMovementsUseCase(movementRepo port.CashMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// Execute lista los movimientos del usuario
func (uc *ListMovementsUseCase) Execute(ctx context.Context, userIDRaw string) ([]entity.CashMovement, error) {
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return nil, entity.ErrInvalidUser
	}
	return uc.movementRepo.ListByUser(ctx, userID)
}
