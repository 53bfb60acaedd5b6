package util

import (
	"regexp"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonVINRe = regexp.MustCompile(`[^A-Z0-9]`)
)

// VINLength is the length of a post-1981 vehicle identification number.
const VINLength = 17

func IsEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeVIN upper-cases vin and strips everything outside [A-Z0-9].
func NormalizeVIN(vin string) string {
	return nonVINRe.ReplaceAllString(strings.ToUpper(vin), "")
}

// IsValidVIN reports whether vin is already normalized and 17 characters long.
func IsValidVIN(vin string) bool {
	return len(vin) == VINLength && NormalizeVIN(vin) == vin
}
