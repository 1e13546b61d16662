package models

import (
	"fmt"
	"math"
)

// CurrencyCode identifies the fixed currency a wallet is denominated in.
// There is no conversion between currencies; every balance is computed
// strictly in its wallet's own currency.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyKZT CurrencyCode = "KZT"
	CurrencyRUB CurrencyCode = "RUB"
)

// Symbol returns the display symbol for the currency. Unrecognized codes
// fall back to "$".
func (c CurrencyCode) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyKZT:
		return "₸"
	case CurrencyRUB:
		return "₽"
	default:
		return "$"
	}
}

// FormatAmount renders an amount with the currency's symbol and two
// decimals, e.g. "$3000.00" or "-₸40.00".
func FormatAmount(amount float64, currency CurrencyCode) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", currency.Symbol(), math.Abs(amount))
	}
	return fmt.Sprintf("%s%.2f", currency.Symbol(), amount)
}
