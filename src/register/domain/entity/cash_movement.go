package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType es el tipo de movimiento de caja
type MovementType string

const (
	MovementOpening MovementType = "apertura"
	MovementClosing MovementType = "cierre"
	MovementCashIn  MovementType = "ingreso"
	MovementCashOut MovementType = "egreso"
)

// CashMovement es un evento del libro de caja: dinero que entra, sale o se
// declara en el registro. Es append-only: este sistema nunca lo modifica
// ni lo borra después de crearlo.
type CashMovement struct {
	ID           int64           `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	MovementType MovementType    `json:"movement_type"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewOpeningMovement arma el movimiento de apertura de caja.
// El ID lo asigna el store al insertar.
func NewOpeningMovement(userID uuid.UUID, amount decimal.Decimal, note string) (*CashMovement, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	if amount.IsNegative() {
		return nil, ErrInvalidQuantity
	}
	if note == "" {
		note = "Apertura de caja"
	}

	return &CashMovement{
		UserID:       userID,
		MovementType: MovementOpening,
		Amount:       amount,
		Note:         note,
	}, nil
}
