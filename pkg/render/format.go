package render

import (
	"strconv"
	"strings"
)

// FormatPrice reformats a submitted price string for display: valid numbers
// gain a minimum of two decimal places (a third is kept when entered);
// anything unparseable is passed through untouched so the user sees what
// they typed.
func FormatPrice(value string) string {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	if _, frac, ok := strings.Cut(value, "."); ok && len(frac) > 2 {
		places := len(frac)
		if places > 3 {
			places = 3
		}
		return strconv.FormatFloat(n, 'f', places, 64)
	}

	return strconv.FormatFloat(n, 'f', 2, 64)
}

// FormatPriceValue renders a catalogue price as a fixed-decimal string for
// form defaults: three decimal places with a trailing zero trimmed, never
// fewer than two.
func FormatPriceValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	return strings.TrimSuffix(s, "0")
}
