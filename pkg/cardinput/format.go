// Package cardinput formats and checks the fields of the card-linking form.
package cardinput

import "strings"

const (
	maxCardDigits   = 16
	maxExpiryDigits = 4
	maxCVVDigits    = 4
	maxZipLength    = 10
)

// Field names as they appear in the card-linking form.
const (
	FieldCardNumber = "card_number"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
	FieldZip        = "zip"
)

// FormatCardNumber keeps the first 16 digits and groups them in blocks of four.
func FormatCardNumber(value string) string {
	digits := keep(value, isDigit, maxCardDigits)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry turns typed digits into MM/YY.
func FormatExpiry(value string) string {
	digits := keep(value, isDigit, maxExpiryDigits)
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV keeps at most four digits.
func FormatCVV(value string) string {
	return keep(value, isDigit, maxCVVDigits)
}

// FormatZip keeps digits and dashes, at most ten characters.
func FormatZip(value string) string {
	return keep(value, func(r rune) bool { return isDigit(r) || r == '-' }, maxZipLength)
}

// Format applies the formatter registered for field. Unknown fields are
// returned unchanged.
func Format(field, value string) string {
	switch field {
	case FieldCardNumber:
		return FormatCardNumber(value)
	case FieldExpiry:
		return FormatExpiry(value)
	case FieldCVV:
		return FormatCVV(value)
	case FieldZip:
		return FormatZip(value)
	default:
		return value
	}
}

// MaskCardNumber hides everything but the last four digits.
func MaskCardNumber(value string) string {
	digits := keep(value, isDigit, -1)
	if len(digits) < 4 {
		return "••••"
	}
	return "•••• " + digits[len(digits)-4:]
}

func keep(value string, allowed func(rune) bool, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range value {
		if limit >= 0 && n == limit {
			break
		}
		if allowed(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
