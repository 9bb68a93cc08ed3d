package usecase

import (
	"context"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockMovementRepo implementa port.CashMovementRepository en memoria
type mockMovementRepo struct {
	movements   []entity.CashMovement
	nextID      int64
	insertErr   error
	lastOpening *entity.CashMovement
	lastErr     error
}

func (m *mockMovementRepo) Insert(_ context.Context, movement *entity.CashMovement) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.nextID++
	stored := *movement
	stored.ID = m.nextID
	m.movements = append(m.movements, stored)
	return m.nextID, nil
}

func (m *mockMovementRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.CashMovement, error) {
	var out []entity.CashMovement
	for _, mv := range m.movements {
		if mv.UserID == userID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockMovementRepo) LastOpening(_ context.Context, _ uuid.UUID) (*entity.CashMovement, error) {
	return m.lastOpening, m.lastErr
}

// mockSalesRepo implementa port.SalesRepository en memoria, con errores
// inyectables por paso para simular fallas parciales del store
type mockSalesRepo struct {
	headers    []entity.SalesHeader
	details    []entity.SalesDetail
	headerErr  error
	detailsErr error
	nextID     int64
}

func (m *mockSalesRepo) InsertHeader(_ context.Context, header *entity.SalesHeader) (int64, error) {
	if m.headerErr != nil {
		return 0, m.headerErr
	}
	m.nextID++
	stored := *header
	stored.ID = m.nextID
	m.headers = append(m.headers, stored)
	return m.nextID, nil
}

func (m *mockSalesRepo) InsertDetails(_ context.Context, details []entity.SalesDetail) error {
	if m.detailsErr != nil {
		return m.detailsErr
	}
	m.details = append(m.details, details...)
	return nil
}

func (m *mockSalesRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.SalesHeader, error) {
	var out []entity.SalesHeader
	for _, h := range m.headers {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

// mockStockRepo implementa catalogPort.StockRepository en memoria.
// Un producto ausente del mapa se trata como sin control de stock (nil).
type mockStockRepo struct {
	stock     map[int64]decimal.Decimal
	getErr    map[int64]error
	updateErr map[int64]error
	updates   []int64
}

func newMockStockRepo() *mockStockRepo {
	return &mockStockRepo{
		stock:     make(map[int64]decimal.Decimal),
		getErr:    make(map[int64]error),
		updateErr: make(map[int64]error),
	}
}

func (m *mockStockRepo) GetStock(_ context.Context, productID int64) (*decimal.Decimal, error) {
	if err := m.getErr[productID]; err != nil {
		return nil, err
	}
	value, ok := m.stock[productID]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (m *mockStockRepo) UpdateStock(_ context.Context, productID int64, newStock decimal.Decimal) error {
	if err := m.updateErr[productID]; err != nil {
		return err
	}
	m.stock[productID] = newStock
	m.updates = append(m.updates, productID)
	return nil
}
