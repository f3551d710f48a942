package report

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRupiah renders a nominal with dot thousand separators, e.g.
// "Rp 1.500.000".
func FormatRupiah(v int64) string {
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = uint64(-(v + 1)) + 1
	}
	digits := strconv.FormatUint(u, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "Rp " + b.String()
}

// ParseRupiah accepts "1500000", "1.500.000" or "Rp 1.500.000".
func ParseRupiah(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "Rp")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ".", "")
	if clean == "" {
		return 0, fmt.Errorf("empty amount %q", s)
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount %q must not be negative", s)
	}
	return v, nil
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
