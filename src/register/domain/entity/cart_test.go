package entity

import (
	"testing"

	catalogEntity "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, priceStr string) catalogEntity.Product {
	return catalogEntity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(priceStr),
		Unit:  "kg",
	}
}

func TestCart_AddUsesDefaultIncrement(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(decimal.NewFromFloat(1.5)))
}

func TestCart_AddSameProductMergesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))
	cart.Add(product(1, "Manzana Roja", "5.20"))

	require.Equal(t, 1, cart.Len())
	lines := cart.Lines()
	assert.True(t, lines[0].Quantity.Equal(decimal.NewFromFloat(3.0)),
		"expected 3.0, got %s", lines[0].Quantity)
}

func TestCart_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(product(3, "Papa Amarilla", "3.80"))
	cart.Add(product(1, "Manzana Roja", "5.20"))
	cart.Add(product(2, "Plátano Seda", "2.50"))
	cart.Add(product(1, "Manzana Roja", "5.20")) // merge, no reorder

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].Product.ID)
	assert.Equal(t, int64(1), lines[1].Product.ID)
	assert.Equal(t, int64(2), lines[2].Product.ID)
}

func TestCart_TotalWorkedExample(t *testing.T) {
	// 5.20 × 1.5 + 2.50 × 1 = 7.80 + 2.50 = 10.30
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))
	cart.Add(product(2, "Plátano Seda", "2.50"))
	require.NoError(t, cart.SetQuantity(2, decimal.NewFromInt(1)))

	lines := cart.Lines()
	assert.Equal(t, "7.80", lines[0].Subtotal().StringFixed(2))
	assert.Equal(t, "2.50", lines[1].Subtotal().StringFixed(2))
	assert.Equal(t, "10.30", cart.Total().StringFixed(2))
}

func TestCart_SetQuantityRejectsNonPositive(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))

	assert.ErrorIs(t, cart.SetQuantity(1, decimal.Zero), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.SetQuantity(1, decimal.NewFromInt(-2)), ErrInvalidQuantity)
}

func TestCart_SetQuantityUnknownLine(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.SetQuantity(99, decimal.NewFromInt(1)), ErrLineNotFound)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))
	cart.Add(product(2, "Plátano Seda", "2.50"))

	require.NoError(t, cart.Remove(1))
	assert.Equal(t, 1, cart.Len())
	assert.ErrorIs(t, cart.Remove(1), ErrLineNotFound)
}

func TestCart_ClearResetsTotal(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Manzana Roja", "5.20"))

	lines := cart.Lines()
	lines[0].Quantity = decimal.NewFromInt(999)

	assert.True(t, cart.Lines()[0].Quantity.Equal(decimal.NewFromFloat(1.5)))
}
