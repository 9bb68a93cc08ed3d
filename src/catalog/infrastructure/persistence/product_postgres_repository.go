package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// ProductPostgresRepository implementa ProductRepository y StockRepository
// usando PostgreSQL. El tag de categoría del producto se resuelve con un
// JOIN a categories (el schema remoto guarda category_id).
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

var _ port.ProductRepository = (*ProductPostgresRepository)(nil)
var _ port.StockRepository = (*ProductPostgresRepository)(nil)

const productColumns = `
	p.id, p.name, p.price, p.unit, COALESCE(c.name, ''), p.image, p.stock, p.created_at, p.updated_at
`

// List retorna los productos ordenados por nombre, filtrando por tag de
// categoría cuando category no es vacío
func (r *ProductPostgresRepository) List(ctx context.Context, category string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
	`
	var args []interface{}

	if category != "" {
		query += ` WHERE c.name = $1`
		args = append(args, category)
	}
	query += ` ORDER BY p.name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Search busca por substring de nombre, case-insensitive (ILIKE)
func (r *ProductPostgresRepository) Search(ctx context.Context, term string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.name ILIKE $1
		ORDER BY p.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID retorna un producto puntual por su identificador
func (r *ProductPostgresRepository) GetByID(ctx context.Context, productID int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// ListCategories retorna la taxonomía completa
func (r *ProductPostgresRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(color, '')
		FROM categories
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Color); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetStock lee el stock actual del producto (nil cuando no se controla stock)
func (r *ProductPostgresRepository) GetStock(ctx context.Context, productID int64) (*decimal.Decimal, error) {
	query := `SELECT stock FROM products WHERE id = $1`

	var stock sql.NullString
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&stock)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading stock for product %d: %w", productID, err)
	}

	if !stock.Valid {
		return nil, nil
	}

	value, err := decimal.NewFromString(stock.String)
	if err != nil {
		return nil, fmt.Errorf("error parsing stock for product %d: %w", productID, err)
	}
	return &value, nil
}

// UpdateStock escribe el nuevo stock del producto. Sin floor check: el valor
// puede quedar negativo según la política configurada en la venta.
func (r *ProductPostgresRepository) UpdateStock(ctx context.Context, productID int64, newStock decimal.Decimal) error {
	query := `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, newStock, productID)
	if err != nil {
		return fmt.Errorf("error updating stock for product %d: %w", productID, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// rowScanner cubre sql.Row y sql.Rows para reusar el scan de producto
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var product entity.Product
	var stock sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Unit,
		&product.Category,
		&product.Image,
		&stock,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if stock.Valid {
		value, err := decimal.NewFromString(stock.String)
		if err != nil {
			return nil, fmt.Errorf("error parsing product stock: %w", err)
		}
		product.Stock = &value
	}
	if createdAt.Valid {
		product.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		product.UpdatedAt = updatedAt.Time
	}

	return &product, nil
}

func scanProducts(rows *sql.Rows) ([]entity.Product, error) {
	var products []entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
