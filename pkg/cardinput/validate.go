package cardinput

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	zipPattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// States lists the two-letter codes accepted by the card-linking form.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(States))
	for _, s := range States {
		m[s] = struct{}{}
	}
	return m
}()

// ValidLuhn reports whether number, ignoring spaces, is 13 to 19 digits
// long and passes the mod-10 checksum.
func ValidLuhn(number string) bool {
	num := strings.ReplaceAll(number, " ", "")
	if len(num) < 13 || len(num) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(num) - 1; i >= 0; i-- {
		c := num[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry reports whether date is a MM/YY value that is not before
// the month of now. Years compare on their last two digits.
func ValidExpiry(date string, now time.Time) bool {
	if !expiryPattern.MatchString(date) {
		return false
	}
	month, _ := strconv.Atoi(date[:2])
	year, _ := strconv.Atoi(date[3:])
	if month < 1 || month > 12 {
		return false
	}

	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return false
	}
	return true
}

// ValidZip accepts 12345 and 12345-6789.
func ValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

// ValidState reports whether code is one of States, case-insensitively.
func ValidState(code string) bool {
	_, ok := stateSet[strings.ToUpper(code)]
	return ok
}
