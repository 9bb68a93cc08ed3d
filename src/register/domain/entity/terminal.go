package entity

import (
	"sync"

	catalogEntity "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View es la pantalla activa del terminal
type View string

const (
	ViewCatalog View = "catalog"
	ViewPayment View = "payment"
	ViewReceipt View = "receipt"
)

// Terminal es la máquina de estados de pantallas del mostrador:
// catalog → payment → receipt → catalog. Modela un solo operador: todas las
// transiciones pasan por el mutex, hay exactamente un escritor.
// La compuerta de caja bloquea la venta: sin apertura registrada no se pasa
// del catálogo ni se toca el carrito.
type Terminal struct {
	mu      sync.Mutex
	session *CashSession
	view    View
	cart    *Cart

	// Guardia de commit: a lo sumo un intento de venta en vuelo, y el
	// recibo del último intento completado para dedupe de reenvíos
	inFlight         bool
	currentAttempt   uuid.UUID
	completedAttempt uuid.UUID
	receipt          *Receipt
}

// NewTerminal crea el terminal en la vista de catálogo con carrito vacío
func NewTerminal(session *CashSession) *Terminal {
	return &Terminal{
		session: session,
		view:    ViewCatalog,
		cart:    NewCart(),
	}
}

// View retorna la pantalla activa
func (t *Terminal) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// AddProduct agrega un producto al carrito. Solo en la vista de catálogo
// y con la caja abierta.
func (t *Terminal) AddProduct(product catalogEntity.Product) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.session.IsOpen() {
		return ErrRegisterClosed
	}
	if t.view != ViewCatalog {
		return ErrInvalidTransition
	}

	t.cart.Add(product)
	return nil
}

// SetQuantity fija la cantidad de un renglón del carrito
func (t *Terminal) SetQuantity(productID int64, quantity decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.session.IsOpen() {
		return ErrRegisterClosed
	}
	if t.view != ViewCatalog {
		return ErrInvalidTransition
	}

	return t.cart.SetQuantity(productID, quantity)
}

// RemoveLine quita un renglón del carrito
func (t *Terminal) RemoveLine(productID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.session.IsOpen() {
		return ErrRegisterClosed
	}
	if t.view != ViewCatalog {
		return ErrInvalidTransition
	}

	return t.cart.Remove(productID)
}

// CartLines retorna los renglones actuales del carrito
func (t *Terminal) CartLines() []CartLine {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cart.Lines()
}

// CartTotal retorna el total actual del carrito
func (t *Terminal) CartTotal() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cart.Total()
}

// CartSnapshot retorna una copia del carrito para armar la venta.
// La copia congela los renglones: el commit trabaja sobre el carrito
// exactamente como estaba al pasar a pagar.
func (t *Terminal) CartSnapshot() *Cart {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := NewCart()
	snapshot.lines = t.cart.Lines()
	return snapshot
}

// Checkout pasa de catálogo a pago. Requiere carrito no vacío.
func (t *Terminal) Checkout() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.session.IsOpen() {
		return ErrRegisterClosed
	}
	if t.view != ViewCatalog {
		return ErrInvalidTransition
	}
	if t.cart.IsEmpty() {
		return ErrEmptyCart
	}

	t.view = ViewPayment
	return nil
}

// CancelPayment vuelve de pago a catálogo conservando el carrito
func (t *Terminal) CancelPayment() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.view != ViewPayment {
		return ErrInvalidTransition
	}

	t.view = ViewCatalog
	return nil
}

// BeginCommit abre un intento de venta y retorna su token. Mientras el
// intento esté en vuelo, cualquier otro pago se rechaza: esa es la garantía
// at-most-once del lado del cliente.
func (t *Terminal) BeginCommit() (uuid.UUID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.view != ViewPayment {
		return uuid.Nil, ErrInvalidTransition
	}
	if t.inFlight {
		return uuid.Nil, ErrCommitInFlight
	}

	t.inFlight = true
	t.currentAttempt = uuid.New()
	return t.currentAttempt, nil
}

// CompleteCommit cierra el intento con éxito y pasa a la vista de recibo.
// Un commit fallido usa FailCommit y el terminal queda en pago.
func (t *Terminal) CompleteCommit(attemptID uuid.UUID, receipt *Receipt) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inFlight || attemptID != t.currentAttempt {
		return ErrInvalidTransition
	}

	t.inFlight = false
	t.completedAttempt = attemptID
	t.receipt = receipt
	t.view = ViewReceipt
	return nil
}

// FailCommit cierra el intento con error; el terminal sigue en pago y el
// cajero puede reintentar.
func (t *Terminal) FailCommit(attemptID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight && attemptID == t.currentAttempt {
		t.inFlight = false
	}
}

// ReceiptForAttempt retorna el recibo si ese intento ya se completó.
// Permite que un reenvío del mismo intento devuelva el recibo existente
// en vez de escribir la venta dos veces.
func (t *Terminal) ReceiptForAttempt(attemptID uuid.UUID) (*Receipt, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if attemptID != uuid.Nil && attemptID == t.completedAttempt && t.receipt != nil {
		return t.receipt, true
	}
	return nil, false
}

// Receipt retorna el recibo de la venta recién completada
func (t *Terminal) Receipt() (*Receipt, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.view != ViewReceipt || t.receipt == nil {
		return nil, false
	}
	return t.receipt, true
}

// NewOrder arranca una venta nueva desde el recibo: vacía el carrito,
// descarta el pago anterior y vuelve al catálogo.
func (t *Terminal) NewOrder() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.view != ViewReceipt {
		return ErrInvalidTransition
	}

	t.cart.Clear()
	t.receipt = nil
	t.view = ViewCatalog
	return nil
}
