package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
)

// CashMovementPostgresRepository implementa CashMovementRepository usando
// PostgreSQL. Solo inserta y lee: el libro de caja es append-only.
type CashMovementPostgresRepository struct {
	db *sql.DB
}

// NewCashMovementPostgresRepository crea una nueva instancia del repositorio
func NewCashMovementPostgresRepository(db *sql.DB) *CashMovementPostgresRepository {
	return &CashMovementPostgresRepository{
		db: db,
	}
}

var _ port.CashMovementRepository = (*CashMovementPostgresRepository)(nil)

// Insert registra un movimiento de caja y retorna el id asignado
func (r *CashMovementPostgresRepository) Insert(ctx context.Context, movement *entity.CashMovement) (int64, error) {
	query := `
		INSERT INTO cash_movements (user_id, movement_type, amount, note, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		movement.UserID,
		movement.MovementType,
		movement.Amount,
		movement.Note,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error inserting cash_movement: %w", err)
	}

	return id, nil
}

// ListByUser retorna los movimientos del usuario, más recientes primero
func (r *CashMovementPostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CashMovement, error) {
	query := `
		SELECT id, user_id, movement_type, amount, COALESCE(note, ''), created_at
		FROM cash_movements
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying cash_movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.CashMovement
	for rows.Next() {
		var movement entity.CashMovement
		err := rows.Scan(
			&movement.ID,
			&movement.UserID,
			&movement.MovementType,
			&movement.Amount,
			&movement.Note,
			&movement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning cash_movement: %w", err)
		}
		movements = append(movements, movement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_movements: %w", err)
	}

	return movements, nil
}

// LastOpening retorna la última apertura del usuario, o nil si nunca abrió
func (r *CashMovementPostgresRepository) LastOpening(ctx context.Context, userID uuid.UUID) (*entity.CashMovement, error) {
	query := `
		SELECT id, user_id, movement_type, amount, COALESCE(note, ''), created_at
		FROM cash_movements
		WHERE user_id = $1 AND movement_type = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var movement entity.CashMovement
	err := r.db.QueryRowContext(ctx, query, userID, entity.MovementOpening).Scan(
		&movement.ID,
		&movement.UserID,
		&movement.MovementType,
		&movement.Amount,
		&movement.Note,
		&movement.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying last opening: %w", err)
	}

	return &movement, nil
}
