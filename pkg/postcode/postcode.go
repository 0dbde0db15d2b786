// Package postcode normalizes and validates UK postcodes for listing
// contact records.
package postcode

import (
	"regexp"
	"strings"
)

var ukPattern = regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]?\d[A-Z]{2}$`)

// Normalize uppercases the postcode and strips all whitespace, the form in
// which postcodes are stored privately.
func Normalize(s string) string {
	upper := strings.ToUpper(s)
	return strings.Join(strings.Fields(upper), "")
}

// Valid reports whether the input looks like a UK postcode after
// normalization, e.g. "sw1a 1aa" -> "SW1A1AA" -> true.
func Valid(s string) bool {
	return ukPattern.MatchString(Normalize(s))
}
