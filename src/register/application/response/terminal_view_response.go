package response

import (
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/money"
)

// CartLineView es un renglón del carrito tal como lo muestra el mostrador
type CartLineView struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// TerminalViewResponse es el estado visible del terminal: pantalla activa,
// carrito y totales
type TerminalViewResponse struct {
	View         entity.View    `json:"view"`
	RegisterOpen bool           `json:"register_open"`
	Cart         []CartLineView `json:"cart"`
	CartTotal    string         `json:"cart_total"`
	ItemCount    int            `json:"item_count"`
}

// NewTerminalViewResponse arma la vista del terminal
func NewTerminalViewResponse(terminal *entity.Terminal, registerOpen bool) TerminalViewResponse {
	lines := terminal.CartLines()
	cart := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		cart = append(cart, CartLineView{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Unit:        line.Product.Unit,
			Quantity:    line.Quantity.String(),
			UnitPrice:   money.Format(line.Product.Price),
			Subtotal:    money.Format(line.Subtotal()),
		})
	}

	return TerminalViewResponse{
		View:         terminal.View(),
		RegisterOpen: registerOpen,
		Cart:         cart,
		CartTotal:    money.Format(terminal.CartTotal()),
		ItemCount:    len(cart),
	}
}
