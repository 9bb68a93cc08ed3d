package request

// OpenRegisterRequest es el formulario de apertura de caja. El monto llega
// como texto porque el cajero puede escribir coma o punto decimal.
type OpenRegisterRequest struct {
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// AddItemRequest agrega un producto del catálogo al carrito
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// SetQuantityRequest fija la cantidad exacta de un renglón del carrito
type SetQuantityRequest struct {
	Quantity string `json:"quantity" binding:"required"`
}

// PayRequest es el intento de cobro de la venta en curso.
// attempt_id es opcional: reenviar el mismo intento devuelve el recibo ya
// emitido en vez de registrar la venta de nuevo.
type PayRequest struct {
	PaymentMethod  string `json:"payment_method" binding:"required"`
	AmountTendered string `json:"amount_tendered,omitempty"`
	AttemptID      string `json:"attempt_id,omitempty"`
}
