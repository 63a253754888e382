package order

import (
	"fmt"
	"strings"
	"unicode"
)

func digitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// NormalizePhone reduces a phone number to canonical +7XXXXXXXXXX form where
// possible. Numbers written with the domestic 8 prefix or without a country
// code are rewritten; anything else comes back digits-only with the original
// + preserved.
func NormalizePhone(phone string) string {
	cleaned := digitsOnly(phone)

	switch {
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "7"):
		return "+" + cleaned
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "8"):
		return "+7" + cleaned[1:]
	case len(cleaned) == 10 && strings.HasPrefix(cleaned, "9"):
		return "+7" + cleaned
	}

	if strings.HasPrefix(phone, "+") {
		return "+" + cleaned
	}
	return cleaned
}

// IsValidPhone accepts Russian mobile numbers only: after stripping
// everything but digits, 11 digits beginning with 7 (the optional leading +
// is dropped by the stripping).
func IsValidPhone(phone string) bool {
	cleaned := digitsOnly(phone)
	return len(cleaned) == 11 && strings.HasPrefix(cleaned, "7")
}

// FormatPhone renders a normalized Russian number in the classic
// +7 (XXX) XXX-XX-XX grouping; other shapes pass through unchanged.
func FormatPhone(phone string) string {
	normalized := NormalizePhone(phone)
	if strings.HasPrefix(normalized, "+7") && len(normalized) == 12 {
		return fmt.Sprintf("%s (%s) %s-%s-%s",
			normalized[:2],
			normalized[2:5],
			normalized[5:8],
			normalized[8:10],
			normalized[10:12])
	}
	return phone
}
