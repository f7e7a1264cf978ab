package extractor

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParsePrice parses displayed price like "$ 1.234.567,89" using provided decimal separator.
// Every other non-digit character is dropped. Price is rounded to cents.
// Returns absent price if text holds no digits.
func ParsePrice(text, decimalSeparator string) decimal.NullDecimal {
	if decimalSeparator == "" {
		decimalSeparator = "."
	}

	integer, fraction := text, ""
	if ix := strings.LastIndex(text, decimalSeparator); ix >= 0 {
		integer, fraction = text[:ix], text[ix+len(decimalSeparator):]
	}

	integer, fraction = digits(integer), digits(fraction)
	if integer == "" && fraction == "" {
		return decimal.NullDecimal{}
	}
	if integer == "" {
		integer = "0"
	}

	value := integer
	if fraction != "" {
		value += "." + fraction
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(price.Round(2))
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}
