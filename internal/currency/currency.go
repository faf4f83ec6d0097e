// Package currency holds the fixed set of supported currencies and their
// display symbols.
package currency

// Default is used when no preference has been stored yet.
const Default = "USD"

// symbols maps supported 3-letter codes to display symbols.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "Fr",
	"INR": "₹",
}

// Supported reports whether code is one of the supported currency codes.
func Supported(code string) bool {
	_, ok := symbols[code]
	return ok
}

// Symbol returns the display symbol for code, falling back to the code
// itself for anything outside the supported set.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Codes returns the supported codes in a stable order for menus.
func Codes() []string {
	return []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "INR"}
}
