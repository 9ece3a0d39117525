package consoledelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidMoney validates whether the field holds a positive amount with at most two decimal places.
var ValidMoney validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return amount.IsPositive() && amount.Equal(amount.Truncate(2))
}
