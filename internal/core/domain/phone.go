package domain

import "regexp"

// Algerian mobile numbers: +213 or 0 prefix, operator digit 5/6/7, then
// eight digits.
var phonePattern = regexp.MustCompile(`^(\+213|0)(5|6|7)[0-9]{8}$`)

// ValidPhone reports whether raw is an Algerian mobile number. The field
// is optional, so empty passes.
func ValidPhone(raw string) bool {
	return raw == "" || phonePattern.MatchString(raw)
}
