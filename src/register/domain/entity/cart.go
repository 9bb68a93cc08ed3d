package entity

import (
	catalogEntity "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// DefaultIncrement es la cantidad que suma cada toque sobre un producto:
// 1.5 es el peso por defecto de la balanza del mostrador.
var DefaultIncrement = decimal.NewFromFloat(1.5)

// CartLine es un renglón del carrito: un producto y su cantidad.
// La cantidad es decimal porque se venden productos pesables (kg).
type CartLine struct {
	Product  catalogEntity.Product `json:"product"`
	Quantity decimal.Decimal       `json:"quantity"`
}

// Subtotal calcula precio × cantidad del renglón
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(l.Quantity)
}

// Cart es el conjunto de trabajo de la venta en curso. Vive solo en la
// memoria de la sesión del cajero; se vacía al completar o abandonar la venta.
// Invariante: a lo sumo un renglón por producto; el orden de inserción es
// el orden de display.
type Cart struct {
	lines []CartLine
}

// NewCart crea un carrito vacío
func NewCart() *Cart {
	return &Cart{}
}

// Add agrega un producto al carrito. Si ya hay un renglón para ese producto,
// incrementa su cantidad en DefaultIncrement en vez de duplicar el renglón.
// El carrito guarda una copia del producto, no una referencia al catálogo.
func (c *Cart) Add(product catalogEntity.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity = c.lines[i].Quantity.Add(DefaultIncrement)
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		Product:  product,
		Quantity: DefaultIncrement,
	})
}

// SetQuantity fija la cantidad exacta de un renglón existente
func (c *Cart) SetQuantity(productID int64, quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove quita un renglón del carrito
func (c *Cart) Remove(productID int64) error {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Total suma precio × cantidad de todos los renglones. Se recalcula en cada
// llamada, nunca se guarda, para que no pueda desincronizarse de los renglones.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Lines retorna una copia de los renglones en orden de inserción
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty indica si el carrito no tiene renglones
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len retorna la cantidad de renglones
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear vacía el carrito; se usa al completar o abandonar una venta
func (c *Cart) Clear() {
	c.lines = nil
}
