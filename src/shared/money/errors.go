package money

import "errors"

// ErrInvalidAmount indica que el texto no es un monto válido (no numérico o negativo)
var ErrInvalidAmount = errors.New("invalid amount: must be a non-negative number")
