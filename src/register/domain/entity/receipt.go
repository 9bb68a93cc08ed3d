package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptLine es un renglón del recibo tal como se imprime
type ReceiptLine struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// Receipt es el view-model del recibo. Se arma del lado del cliente con el
// carrito y el pago exactamente como estaban al momento del commit (no se
// relee del store), así el contenido es inmune a cambios intercalados.
type Receipt struct {
	SaleHeaderID  int64         `json:"sale_header_id"`
	AttemptID     uuid.UUID     `json:"attempt_id"`
	Lines         []ReceiptLine `json:"lines"`
	Total         string        `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	AmountPaid    string        `json:"amount_paid"`
	Change        string        `json:"change"`
	Remaining     string        `json:"remaining"`
	CreatedAt     time.Time     `json:"created_at"`
}
