package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
)

// SalesPostgresRepository implementa SalesRepository usando PostgreSQL.
// Cabecera y detalles se insertan como escrituras independientes, sin
// transacción: el flujo de venta asume exactamente esa semántica (una
// cabecera puede quedar huérfana si los detalles fallan).
type SalesPostgresRepository struct {
	db *sql.DB
}

// NewSalesPostgresRepository crea una nueva instancia del repositorio
func NewSalesPostgresRepository(db *sql.DB) *SalesPostgresRepository {
	return &SalesPostgresRepository{
		db: db,
	}
}

var _ port.SalesRepository = (*SalesPostgresRepository)(nil)

// InsertHeader inserta la cabecera y retorna el id asignado
func (r *SalesPostgresRepository) InsertHeader(ctx context.Context, header *entity.SalesHeader) (int64, error) {
	query := `
		INSERT INTO sales_header (user_id, total, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		header.UserID,
		header.Total,
		header.PaymentMethod,
		header.Status,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error inserting sales_header: %w", err)
	}

	return id, nil
}

// InsertDetails inserta los renglones de la venta, uno por uno
func (r *SalesPostgresRepository) InsertDetails(ctx context.Context, details []entity.SalesDetail) error {
	query := `
		INSERT INTO sales_detail (sale_header_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	for _, detail := range details {
		_, err := r.db.ExecContext(ctx, query,
			detail.SaleHeaderID,
			detail.ProductID,
			detail.Quantity,
			detail.UnitPrice,
			detail.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error inserting sales_detail for product %d: %w", detail.ProductID, err)
		}
	}

	return nil
}

// ListByUser retorna las cabeceras de venta del usuario, más recientes primero
func (r *SalesPostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SalesHeader, error) {
	query := `
		SELECT id, user_id, total, payment_method, status, created_at
		FROM sales_header
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying sales_header: %w", err)
	}
	defer rows.Close()

	var headers []entity.SalesHeader
	for rows.Next() {
		var header entity.SalesHeader
		err := rows.Scan(
			&header.ID,
			&header.UserID,
			&header.Total,
			&header.PaymentMethod,
			&header.Status,
			&header.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sales_header: %w", err)
		}
		headers = append(headers, header)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales_header: %w", err)
	}

	return headers, nil
}
