package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/money"

	"github.com/google/uuid"
)

// OpenRegisterUseCase registra la apertura de caja: valida cajero y monto,
// inserta el CashMovement de apertura en el store y recién ahí abre la
// compuerta. Si la escritura remota falla, la caja queda cerrada y el error
// del store se muestra tal cual.
type OpenRegisterUseCase struct {
	movementRepo port.CashMovementRepository
	session      *entity.CashSession
	reuseOpening bool
}

// NewOpenRegisterUseCase crea una nueva instancia del caso de uso
func NewOpenRegisterUseCase(
	movementRepo port.CashMovementRepository,
	session *entity.CashSession,
	reuseOpening bool,
) *OpenRegisterUseCase {
	return &OpenRegisterUseCase{
		movementRepo: movementRepo,
		session:      session,
		reuseOpening: reuseOpening,
	}
}

// Execute abre la caja. amountRaw acepta coma o punto decimal; la validación
// corre completa antes de intentar cualquier escritura remota.
func (uc *OpenRegisterUseCase) Execute(ctx context.Context, userIDRaw, amountRaw, note string) (*entity.CashMovement, error) {
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return nil, entity.ErrInvalidUser
	}

	amount, err := money.ParseAmount(amountRaw)
	if err != nil {
		return nil, err
	}

	movement, err := entity.NewOpeningMovement(userID, amount, note)
	if err != nil {
		return nil, err
	}

	// Política de reapertura: si el cajero ya abrió hoy, reusar esa
	// apertura en vez de exigir una nueva
	if uc.reuseOpening && !uc.session.IsOpen() {
		if last := uc.lastOpeningToday(ctx, userID); last != nil {
			log.Printf("🔁 Reusing today's opening for user %s (movement %d)", userID, last.ID)
			if err := uc.session.MarkOpen(userID, last.Amount, last.ID, last.CreatedAt); err != nil {
				return nil, err
			}
			return last, nil
		}
	}

	if uc.session.IsOpen() {
		return nil, entity.ErrRegisterOpen
	}

	movementID, err := uc.movementRepo.Insert(ctx, movement)
	if err != nil {
		// La caja sigue cerrada; el mensaje del store pasa tal cual
		return nil, fmt.Errorf("error registering cash opening: %w", err)
	}

	movement.ID = movementID
	movement.CreatedAt = time.Now()

	if err := uc.session.MarkOpen(userID, amount, movementID, movement.CreatedAt); err != nil {
		return nil, err
	}

	log.Printf("✅ Cash register opened: user=%s amount=%s movement=%d", userID, money.Format(amount), movementID)
	return movement, nil
}

// lastOpeningToday busca la última apertura del usuario y la retorna solo
// si es del día calendario actual
func (uc *OpenRegisterUseCase) lastOpeningToday(ctx context.Context, userID uuid.UUID) *entity.CashMovement {
	last, err := uc.movementRepo.LastOpening(ctx, userID)
	if err != nil {
		log.Printf("⚠️  Warning: could not check last opening: %v", err)
		return nil
	}
	if last == nil {
		return nil
	}

	now := time.Now()
	y1, m1, d1 := last.CreatedAt.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return last
	}
	return nil
}
