// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "KR"

// FormatKorean renders a Korean landline, mobile or four-digit service number
// with hyphens. Only the ASCII digits of the input are considered. When the
// digits match no known layout the input is returned unchanged.
//
// The prefix branches are exclusive: a "02" or "01" number of an unexpected
// length is not retried against the regional layout.
func FormatKorean(input string) string {
	d := digits(input)

	switch {
	case strings.HasPrefix(d, "02"):
		switch len(d) {
		case 9:
			return join(d[0:2], d[2:5], d[5:9])
		case 10:
			return join(d[0:2], d[2:6], d[6:10])
		}
	case strings.HasPrefix(d, "01"):
		if formatted, ok := threePart(d); ok {
			return formatted
		}
	case len(d) == 8 && !strings.HasPrefix(d, "0"):
		return join(d[0:4], d[4:8])
	case strings.HasPrefix(d, "0"):
		if formatted, ok := threePart(d); ok {
			return formatted
		}
	}

	return input
}

// threePart handles the 0XX-XXX-XXXX and 0XX-XXXX-XXXX layouts shared by
// mobile and regional numbers.
func threePart(d string) (string, bool) {
	switch len(d) {
	case 10:
		return join(d[0:3], d[3:6], d[6:10]), true
	case 11:
		return join(d[0:3], d[3:7], d[7:11]), true
	}
	return "", false
}

func digits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func join(parts ...string) string {
	return strings.Join(parts, "-")
}

// E164 formats a phone number to E.164 using KR as the default region.
// If parsing fails or the number is not valid, it returns "" and false.
func E164(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return "", false
	}

	if !phonenumbers.IsValidNumber(number) {
		return "", false
	}

	return phonenumbers.Format(number, phonenumbers.E164), true
}
