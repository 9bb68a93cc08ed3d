package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashSession es la compuerta de la caja: Closed o Open. Arranca Closed en
// cada sesión de trabajo del cajero; la apertura registrada en el store es
// prerrequisito para vender. No hay transición de vuelta a Closed: el cierre
// de caja no está implementado en este sistema (el tipo de movimiento
// "cierre" existe en el modelo para uso futuro).
type CashSession struct {
	mu         sync.RWMutex
	open       bool
	openedBy   uuid.UUID
	openedAt   time.Time
	amount     decimal.Decimal
	movementID int64
}

// NewCashSession crea la sesión de caja en estado Closed
func NewCashSession() *CashSession {
	return &CashSession{}
}

// IsOpen indica si la caja está abierta para vender
func (s *CashSession) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// MarkOpen transiciona Closed→Open después de que la apertura quedó
// registrada en el store. Falla si la caja ya estaba abierta.
func (s *CashSession) MarkOpen(userID uuid.UUID, amount decimal.Decimal, movementID int64, openedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return ErrRegisterOpen
	}

	s.open = true
	s.openedBy = userID
	s.amount = amount
	s.movementID = movementID
	s.openedAt = openedAt
	return nil
}

// Status retorna una vista del estado actual de la caja
func (s *CashSession) Status() CashSessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := CashSessionStatus{Open: s.open}
	if s.open {
		status.OpenedBy = s.openedBy.String()
		status.OpenedAt = s.openedAt
		status.OpeningAmount = s.amount.StringFixed(2)
		status.MovementID = s.movementID
	}
	return status
}

// CashSessionStatus es la vista serializable del estado de la caja
type CashSessionStatus struct {
	Open          bool      `json:"open"`
	OpenedBy      string    `json:"opened_by,omitempty"`
	OpenedAt      time.Time `json:"opened_at,omitempty"`
	OpeningAmount string    `json:"opening_amount,omitempty"`
	MovementID    int64     `json:"movement_id,omitempty"`
}
