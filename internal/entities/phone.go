package entities

import (
	"strings"
)

// Algerian mobile numbers are 05/06/07 followed by eight digits. Stored
// and compared in E.164 form ("+213" + nine digits, trunk zero dropped).

const algeriaCountryCode = "213"

// NormalizeAlgerianPhone converts any accepted spelling of an Algerian
// mobile number to E.164. Accepted inputs: "+213...", "00213..." or the
// national "0..." form, with optional spaces, dots and dashes. A trunk
// zero left in after the country code ("+2130552...") is stripped. The
// second return value is false when the input is not a valid mobile.
func NormalizeAlgerianPhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case ' ', '-', '.', '(', ')':
			continue
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()

	switch {
	case strings.HasPrefix(s, "+"+algeriaCountryCode):
		s = strings.TrimPrefix(s, "+"+algeriaCountryCode)
	case strings.HasPrefix(s, "00"+algeriaCountryCode):
		s = strings.TrimPrefix(s, "00"+algeriaCountryCode)
	}

	// National trunk zero, also tolerated after a country code.
	if strings.HasPrefix(s, "0") {
		s = s[1:]
	}

	if len(s) != 9 {
		return "", false
	}
	switch s[0] {
	case '5', '6', '7':
	default:
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	return "+" + algeriaCountryCode + s, true
}

func IsValidAlgerianMobile(raw string) bool {
	_, ok := NormalizeAlgerianPhone(raw)
	return ok
}
