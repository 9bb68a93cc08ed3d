package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus es el estado de una venta persistida
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
	SaleCancelled SaleStatus = "cancelled"
)

// SalesHeader es la cabecera persistida de una venta. El total debe ser
// igual al total del carrito al momento del commit.
type SalesHeader struct {
	ID            int64           `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        SaleStatus      `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SalesDetail es un renglón persistido de la venta, con snapshot del precio
// unitario al momento de vender. Σ(subtotal) debería igualar el total de la
// cabecera; el store no lo garantiza transaccionalmente.
type SalesDetail struct {
	ID           int64           `json:"id"`
	SaleHeaderID int64           `json:"sale_header_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BuildSale arma la cabecera y los detalles a partir del carrito, con el
// precio unitario congelado al momento del commit. No escribe nada.
func BuildSale(userID uuid.UUID, cart *Cart, method PaymentMethod) (*SalesHeader, []SalesDetail, error) {
	if userID == uuid.Nil {
		return nil, nil, ErrInvalidUser
	}
	if cart == nil || cart.IsEmpty() {
		return nil, nil, ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, nil, ErrInvalidPaymentMethod
	}

	header := &SalesHeader{
		UserID:        userID,
		Total:         cart.Total(),
		PaymentMethod: method,
		Status:        SaleCompleted,
	}

	lines := cart.Lines()
	details := make([]SalesDetail, 0, len(lines))
	for _, line := range lines {
		details = append(details, SalesDetail{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Subtotal:  line.Subtotal(),
		})
	}

	return header, details, nil
}

// ComputeChange calcula vuelto o saldo pendiente.
// difference = total - tendered: negativo es vuelto al cliente, positivo
// es lo que falta pagar.
func ComputeChange(total, tendered decimal.Decimal) (change, remaining decimal.Decimal) {
	difference := total.Sub(tendered)
	if difference.IsNegative() {
		return difference.Neg(), decimal.Zero
	}
	return decimal.Zero, difference
}
