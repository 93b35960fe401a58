package utils

import (
	"fmt"
	"strings"
)

// FormatPrice formats an amount as euros with a comma decimal separator,
// e.g. 12.5 -> "12,50 €".
func FormatPrice(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)
	return strings.Replace(formatted, ".", ",", 1) + " €"
}

// FormatPriceRange renders a restaurant's price band, e.g. "10,00 € - 18,00 €".
func FormatPriceRange(min, max float64) string {
	return FormatPrice(min) + " - " + FormatPrice(max)
}
