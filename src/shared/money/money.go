package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Paquete money: parseo y formato de montos monetarios.
// Los cajeros escriben montos con coma o punto decimal ("10,50" o "10.50"),
// por eso ParseAmount normaliza la coma antes de parsear.

// ParseAmount convierte el texto ingresado por el cajero a decimal.
// Acepta coma o punto como separador decimal.
// Rechaza valores no numéricos y negativos (retorna ErrInvalidAmount).
func ParseAmount(input string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if normalized == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}

// Format formatea un monto con dos decimales para mostrar en caja/recibo.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatWithSymbol antepone el símbolo de la moneda del local (S/.)
func FormatWithSymbol(amount decimal.Decimal) string {
	return "S/ " + Format(amount)
}
