package port

import (
	"context"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"

	"github.com/google/uuid"
)

// SalesRepository define las escrituras de venta contra el store remoto.
// Cabecera y detalles se insertan en llamadas separadas, sin transacción
// que las cubra: si InsertDetails falla, la cabecera ya quedó persistida.
type SalesRepository interface {
	// InsertHeader inserta la cabecera y retorna el id asignado por el store
	InsertHeader(ctx context.Context, header *entity.SalesHeader) (int64, error)

	// InsertDetails inserta los renglones de la venta
	InsertDetails(ctx context.Context, details []entity.SalesDetail) error

	// ListByUser retorna las ventas del usuario, más recientes primero
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SalesHeader, error)
}

// CashMovementRepository define el libro de caja en el store remoto.
// Solo Insert y lecturas: los movimientos nunca se modifican ni se borran.
type CashMovementRepository interface {
	// Insert registra un movimiento y retorna el id asignado por el store
	Insert(ctx context.Context, movement *entity.CashMovement) (int64, error)

	// ListByUser retorna los movimientos del usuario, más recientes primero
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CashMovement, error)

	// LastOpening retorna la última apertura del usuario, o nil si nunca abrió
	LastOpening(ctx context.Context, userID uuid.UUID) (*entity.CashMovement, error)
}
