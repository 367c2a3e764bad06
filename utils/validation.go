// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// DefaultCountryCode is prefixed to national numbers so stored phones are
// always E.164 and deliverable by SMS.
var DefaultCountryCode = "55"

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	e164Pattern     = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	nationalPattern = regexp.MustCompile(`^0?[1-9]\d{9,10}$`)
)

// NormalizePhone returns phone in E.164 form. National numbers (area code
// plus 8 or 9 digits, optionally with a trunk 0) get DefaultCountryCode.
func NormalizePhone(phone string) (string, bool) {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}
	if !strings.HasPrefix(cleaned, "+") && nationalPattern.MatchString(cleaned) {
		cleaned = "+" + DefaultCountryCode + strings.TrimPrefix(cleaned, "0")
	}
	if !e164Pattern.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}
