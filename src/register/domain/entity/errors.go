package entity

import "errors"

var (
	// Validación: se recuperan localmente, nunca llegan al store remoto
	ErrEmptyCart            = errors.New("cart must have at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInsufficientTender   = errors.New("amount tendered is less than the sale total")
	ErrLineNotFound         = errors.New("product is not in the cart")

	// Autenticación: referencia de usuario ausente o con forma inválida
	ErrInvalidUser = errors.New("user not authenticated or invalid user id")

	// Estado de caja y terminal
	ErrRegisterClosed    = errors.New("cash register is not open")
	ErrRegisterOpen      = errors.New("cash register is already open")
	ErrInvalidTransition = errors.New("action not allowed in the current view")
	ErrCommitInFlight    = errors.New("a sale commit is already in progress")

	// Stock (solo con política estricta)
	ErrInsufficientStock = errors.New("insufficient stock for sale")
)
