package utils

import (
	"fmt"
	"math"
	"strings"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SupportedCurrencies are the display currencies the site offers. Prices are
// stored in INR; USD is derived through the exchange rate service.
var SupportedCurrencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
}

// FormatCurrency renders an amount in the display convention of the given
// currency: symbol prefix, no fractional digits, locale-appropriate digit
// grouping (Indian lakh/crore grouping for INR, western thousands otherwise).
func FormatCurrency(amount float64, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies[DefaultCurrency]
	}

	rounded := int64(math.Round(amount))

	switch currency.Code {
	case "INR":
		return currency.Symbol + groupIndian(rounded)
	default:
		return currency.Symbol + groupWestern(rounded)
	}
}

// GetCurrencySymbol returns the display symbol for a currency code.
func GetCurrencySymbol(currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		return SupportedCurrencies[DefaultCurrency].Symbol
	}
	return currency.Symbol
}

func ValidateCurrencyCode(code string) bool {
	_, exists := SupportedCurrencies[code]
	return exists
}

// groupWestern formats 1234567 as "1,234,567".
func groupWestern(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ",")
	if negative {
		return "-" + out
	}
	return out
}

// groupIndian formats 1234567 as "12,34,567": the last three digits form one
// group, every preceding pair forms another.
func groupIndian(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	groups := []string{digits[len(digits)-3:]}
	digits = digits[:len(digits)-3]
	for len(digits) > 2 {
		groups = append([]string{digits[len(digits)-2:]}, groups...)
		digits = digits[:len(digits)-2]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ",")
	if negative {
		return "-" + out
	}
	return out
}
