package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// fieldErrors convierte los errores del binding en mensajes por campo,
// indexados por nombre de campo del struct, para mostrarlos inline.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["Form"] = "Invalid form submission"
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required"
		case "email":
			out[fe.Field()] = "Must be a valid email address"
		case "min":
			out[fe.Field()] = "Must be at least " + fe.Param() + " characters"
		default:
			out[fe.Field()] = "Invalid value"
		}
	}
	return out
}

// parsePositiveAmount valida el importe de un movimiento antes de tocar la
// red: decimal válido y estrictamente mayor que cero.
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New("Amount must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("Amount must be positive")
	}
	return amount, nil
}

// parseBalance valida el saldo inicial de una cuenta: decimal válido y
// cero o positivo.
func parseBalance(raw string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New("Balance must be a number")
	}
	if balance.IsNegative() {
		return decimal.Zero, errors.New("Balance must be zero or positive")
	}
	return balance, nil
}

// parseDate exige el formato yyyy-mm-dd que espera la API.
func parseDate(raw string) (string, error) {
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", errors.New("Date must be yyyy-mm-dd")
	}
	return raw, nil
}
