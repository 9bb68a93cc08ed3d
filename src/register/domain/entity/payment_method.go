package entity

// PaymentMethod es el método de pago de una venta
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "efectivo"
	PaymentYape   PaymentMethod = "yape"
	PaymentPlin   PaymentMethod = "plin"
	PaymentCard   PaymentMethod = "tarjeta"
)

// IsValid indica si el método de pago es uno de los aceptados en caja
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentYape, PaymentPlin, PaymentCard:
		return true
	}
	return false
}

// IsCash indica si el pago es en efectivo. Solo el efectivo valida el monto
// entregado contra el total; las billeteras y la tarjeta cobran exacto.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}
