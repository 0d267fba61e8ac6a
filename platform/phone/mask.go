package phone

import "strings"

// Mask hides all but the last four digits of a phone value while preserving
// separators, for use in log lines. Values with four digits or fewer keep
// only their last digit.
//
//	"010-1234-5678" -> "***-****-5678"
//	"1234"          -> "***4"
func Mask(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	runes := []rune(value)
	total := 0
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			total++
		}
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}

	seen := 0
	for i, r := range runes {
		if r < '0' || r > '9' {
			continue
		}
		seen++
		if seen <= total-keep {
			runes[i] = '*'
		}
	}
	return string(runes)
}
