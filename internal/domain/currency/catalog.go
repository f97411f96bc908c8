// Package currency holds the fixed catalog of supported currency codes.
// The engine stores and compares currency purely as the 3-letter code;
// symbol and name exist for display only.
package currency

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var catalog = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "BGN", Symbol: "лв", Name: "Bulgarian Lev"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
}

// All returns the catalog in its fixed display order.
func All() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for a code, or false when the code is
// not supported.
func Lookup(code string) (Currency, bool) {
	for _, c := range catalog {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsValid reports whether a code belongs to the catalog.
func IsValid(code string) bool {
	_, ok := Lookup(code)
	return ok
}
