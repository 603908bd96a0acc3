// Package currency validates and normalizes the ISO 4217 currency codes accepted for FX deals.
package currency

import (
	"regexp"
	"sort"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// supported is the fixed allow-list of currency codes a deal may reference.
var supported = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {}, "AUD": {}, "CAD": {}, "NZD": {}, "SEK": {}, "NOK": {}, "DKK": {},
	"PLN": {}, "CZK": {}, "HUF": {}, "BGN": {}, "RON": {}, "HRK": {}, "RUB": {}, "CNY": {}, "HKD": {}, "SGD": {}, "KRW": {},
	"INR": {}, "BRL": {}, "MXN": {}, "ZAR": {}, "TRY": {}, "THB": {}, "MYR": {}, "IDR": {}, "PHP": {}, "VND": {}, "EGP": {},
	"SAR": {}, "AED": {}, "QAR": {}, "KWD": {}, "BHD": {}, "OMR": {}, "JOD": {}, "LBP": {}, "ILS": {}, "DZD": {}, "MAD": {},
	"TND": {}, "LYD": {}, "NGN": {}, "GHS": {}, "KES": {}, "UGX": {}, "TZS": {}, "RWF": {}, "ETB": {}, "XOF": {}, "XAF": {},
}

// canonical upper-cases and trims a raw code without checking it.
func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCurrency reports whether code, once trimmed and upper-cased, is a three-letter
// code from the supported set.
func IsValidCurrency(code string) bool {
	c := canonical(code)
	if c == "" || !codePattern.MatchString(c) {
		return false
	}
	_, ok := supported[c]
	return ok
}

// IsValidCurrencyPair reports whether both codes are valid and differ from each other,
// ignoring case.
func IsValidCurrencyPair(from, to string) bool {
	if !IsValidCurrency(from) || !IsValidCurrency(to) {
		return false
	}
	return canonical(from) != canonical(to)
}

// NormalizeCurrency returns the canonical upper-case form of code.
// The boolean is false when code is not a supported currency.
func NormalizeCurrency(code string) (string, bool) {
	c := canonical(code)
	if !IsValidCurrency(c) {
		return "", false
	}
	return c, true
}

// SupportedCurrencies returns the supported codes in alphabetical order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(supported))
	for c := range supported {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
