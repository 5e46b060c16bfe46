package sellerboard

import (
	"strconv"
	"strings"

	"github.com/jekabolt/sellerboard-kpi/internal/civil"
)

// ResolveDate converts a report date to YYYY-MM-DD.
//
// Slash dates are read by magnitude: a first part above 12 means DD/MM, else a
// second part above 12 means MM/DD, else DD/MM. Dot dates are always DD.MM.YYYY.
// Historical imports used the same rule, so it must not change.
func ResolveDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if civil.Valid(raw) {
		return raw, true
	}

	switch {
	case strings.Contains(raw, "/"):
		a, b, y, ok := splitDate(raw, "/")
		if !ok {
			return "", false
		}
		an, _ := strconv.Atoi(a)
		bn, _ := strconv.Atoi(b)
		if an <= 12 && bn > 12 {
			return isoDate(y, a, b)
		}
		return isoDate(y, b, a)
	case strings.Contains(raw, "."):
		d, m, y, ok := splitDate(raw, ".")
		if !ok {
			return "", false
		}
		return isoDate(y, m, d)
	}
	return "", false
}

func splitDate(raw, sep string) (string, string, string, bool) {
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return "", "", "", false
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || !allDigits(p) {
			return "", "", "", false
		}
		parts[i] = p
	}
	return parts[0], parts[1], parts[2], true
}

func isoDate(year, month, day string) (string, bool) {
	d := year + "-" + padTwo(month) + "-" + padTwo(day)
	if !civil.Valid(d) {
		return "", false
	}
	return d, true
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
