package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSession(t *testing.T) *CashSession {
	t.Helper()
	session := NewCashSession()
	err := session.MarkOpen(uuid.New(), decimal.NewFromInt(100), 1, time.Now())
	require.NoError(t, err)
	return session
}

func TestTerminal_StartsInCatalogView(t *testing.T) {
	terminal := NewTerminal(NewCashSession())
	assert.Equal(t, ViewCatalog, terminal.View())
}

func TestTerminal_ClosedRegisterBlocksCart(t *testing.T) {
	terminal := NewTerminal(NewCashSession())

	assert.ErrorIs(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")), ErrRegisterClosed)
	assert.ErrorIs(t, terminal.SetQuantity(1, decimal.NewFromInt(1)), ErrRegisterClosed)
	assert.ErrorIs(t, terminal.RemoveLine(1), ErrRegisterClosed)
	assert.ErrorIs(t, terminal.Checkout(), ErrRegisterClosed)
}

func TestTerminal_CheckoutRequiresNonEmptyCart(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	assert.ErrorIs(t, terminal.Checkout(), ErrEmptyCart)
}

func TestTerminal_CatalogToPaymentAndBack(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))

	require.NoError(t, terminal.Checkout())
	assert.Equal(t, ViewPayment, terminal.View())

	// En pago no se toca el carrito
	assert.ErrorIs(t, terminal.AddProduct(product(2, "Tomate", "3.50")), ErrInvalidTransition)

	require.NoError(t, terminal.CancelPayment())
	assert.Equal(t, ViewCatalog, terminal.View())
	assert.Len(t, terminal.CartLines(), 1, "cancel keeps the cart")
}

func TestTerminal_BeginCommitOnlyFromPayment(t *testing.T) {
	terminal := NewTerminal(openSession(t))

	_, err := terminal.BeginCommit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminal_SecondCommitWhileInFlightRejected(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	first, err := terminal.BeginCommit()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	_, err = terminal.BeginCommit()
	assert.ErrorIs(t, err, ErrCommitInFlight)
}

func TestTerminal_FailCommitAllowsRetry(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	attempt, err := terminal.BeginCommit()
	require.NoError(t, err)

	terminal.FailCommit(attempt)
	assert.Equal(t, ViewPayment, terminal.View(), "failed commit stays on payment")
	assert.Len(t, terminal.CartLines(), 1, "failed commit keeps the cart")

	retry, err := terminal.BeginCommit()
	require.NoError(t, err)
	assert.NotEqual(t, attempt, retry)
}

func TestTerminal_CompleteCommitShowsReceipt(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	attempt, err := terminal.BeginCommit()
	require.NoError(t, err)

	receipt := &Receipt{SaleHeaderID: 42, AttemptID: attempt}
	require.NoError(t, terminal.CompleteCommit(attempt, receipt))

	assert.Equal(t, ViewReceipt, terminal.View())
	got, ok := terminal.Receipt()
	require.True(t, ok)
	assert.Equal(t, int64(42), got.SaleHeaderID)
}

func TestTerminal_CompleteCommitWrongAttemptRejected(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	_, err := terminal.BeginCommit()
	require.NoError(t, err)

	err = terminal.CompleteCommit(uuid.New(), &Receipt{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminal_ReceiptForAttemptDedupe(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	attempt, err := terminal.BeginCommit()
	require.NoError(t, err)
	require.NoError(t, terminal.CompleteCommit(attempt, &Receipt{SaleHeaderID: 7, AttemptID: attempt}))

	// El reenvío del mismo intento devuelve el recibo existente
	got, ok := terminal.ReceiptForAttempt(attempt)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.SaleHeaderID)

	_, ok = terminal.ReceiptForAttempt(uuid.New())
	assert.False(t, ok)

	_, ok = terminal.ReceiptForAttempt(uuid.Nil)
	assert.False(t, ok)
}

func TestTerminal_NewOrderResetsForNextSale(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	require.NoError(t, terminal.AddProduct(product(1, "Manzana Roja", "5.20")))
	require.NoError(t, terminal.Checkout())

	attempt, err := terminal.BeginCommit()
	require.NoError(t, err)
	require.NoError(t, terminal.CompleteCommit(attempt, &Receipt{AttemptID: attempt}))

	require.NoError(t, terminal.NewOrder())
	assert.Equal(t, ViewCatalog, terminal.View())
	assert.Empty(t, terminal.CartLines())
	_, ok := terminal.Receipt()
	assert.False(t, ok)
}

func TestTerminal_NewOrderOnlyFromReceipt(t *testing.T) {
	terminal := NewTerminal(openSession(t))
	assert.ErrorIs(t, terminal.NewOrder(), ErrInvalidTransition)
}

func TestCashSession_SecondOpenRejected(t *testing.T) {
	session := NewCashSession()
	userID := uuid.New()
	require.NoError(t, session.MarkOpen(userID, decimal.NewFromInt(50), 1, time.Now()))

	err := session.MarkOpen(userID, decimal.NewFromInt(50), 2, time.Now())
	assert.ErrorIs(t, err, ErrRegisterOpen)
	assert.True(t, session.IsOpen())
}

func TestCashSession_StatusReflectsOpening(t *testing.T) {
	session := NewCashSession()
	assert.False(t, session.Status().Open)

	userID := uuid.New()
	openedAt := time.Now()
	require.NoError(t, session.MarkOpen(userID, decimal.RequireFromString("10.50"), 3, openedAt))

	status := session.Status()
	assert.True(t, status.Open)
	assert.Equal(t, userID.String(), status.OpenedBy)
	assert.Equal(t, "10.50", status.OpeningAmount)
	assert.Equal(t, int64(3), status.MovementID)
}
