package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Para el flujo de venta es de solo lectura: el carrito guarda una copia,
// nunca un puntero mutable al catálogo.
type Product struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Unit      string           `json:"unit"`     // kg, un, atado
	Category  string           `json:"category"` // tag de categoría (ej: "citricos")
	Image     string           `json:"image"`
	Stock     *decimal.Decimal `json:"stock,omitempty"` // NULL = stock no controlado
	CreatedAt time.Time        `json:"created_at,omitempty"`
	UpdatedAt time.Time        `json:"updated_at,omitempty"`
}

// Category representa una categoría de la taxonomía del catálogo
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
