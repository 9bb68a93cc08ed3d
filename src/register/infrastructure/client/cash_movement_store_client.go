package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashMovementStoreClient es el cliente HTTP del libro de caja contra el
// store remoto. Implementa CashMovementRepository: solo insert y lecturas.
type CashMovementStoreClient struct {
	storeHTTP
}

// NewCashMovementStoreClient crea una nueva instancia del cliente
func NewCashMovementStoreClient() *CashMovementStoreClient {
	return &CashMovementStoreClient{storeHTTP: newStoreHTTP()}
}

var _ port.CashMovementRepository = (*CashMovementStoreClient)(nil)

// cashMovementRow es la fila de cash_movements en el store remoto
type cashMovementRow struct {
	ID           int64           `json:"id,omitempty"`
	UserID       string          `json:"user_id"`
	MovementType string          `json:"movement_type"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
}

// Insert registra un movimiento de caja y retorna el id asignado
func (c *CashMovementStoreClient) Insert(ctx context.Context, movement *entity.CashMovement) (int64, error) {
	row := cashMovementRow{
		UserID:       movement.UserID.String(),
		MovementType: string(movement.MovementType),
		Amount:       movement.Amount,
		Note:         movement.Note,
	}

	var inserted []cashMovementRow
	if err := c.post(ctx, "/rest/v1/cash_movements", []cashMovementRow{row}, &inserted); err != nil {
		return 0, fmt.Errorf("error inserting cash_movement: %w", err)
	}
	if len(inserted) == 0 {
		return 0, fmt.Errorf("error inserting cash_movement: remote store returned no row")
	}

	return inserted[0].ID, nil
}

// ListByUser retorna los movimientos del usuario, más recientes primero
func (c *CashMovementStoreClient) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CashMovement, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID.String())
	params.Set("order", "created_at.desc")

	var rows []cashMovementRow
	if err := c.get(ctx, "/rest/v1/cash_movements", params, &rows); err != nil {
		return nil, fmt.Errorf("error fetching cash movements: %w", err)
	}

	return toMovements(userID, rows), nil
}

// LastOpening retorna la última apertura del usuario, o nil si nunca abrió
func (c *CashMovementStoreClient) LastOpening(ctx context.Context, userID uuid.UUID) (*entity.CashMovement, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID.String())
	params.Set("movement_type", "eq."+string(entity.MovementOpening))
	params.Set("order", "created_at.desc")
	params.Set("limit", "1")

	var rows []cashMovementRow
	if err := c.get(ctx, "/rest/v1/cash_movements", params, &rows); err != nil {
		return nil, fmt.Errorf("error fetching last opening: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	movements := toMovements(userID, rows)
	return &movements[0], nil
}

func toMovements(userID uuid.UUID, rows []cashMovementRow) []entity.CashMovement {
	movements := make([]entity.CashMovement, 0, len(rows))
	for _, row := range rows {
		movement := entity.CashMovement{
			ID:           row.ID,
			UserID:       userID,
			MovementType: entity.MovementType(row.MovementType),
			Amount:       row.Amount,
			Note:         row.Note,
		}
		if row.CreatedAt != nil {
			movement.CreatedAt = *row.CreatedAt
		}
		movements = append(movements, movement)
	}
	return movements
}
