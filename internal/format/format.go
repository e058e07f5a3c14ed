// Package format holds pure display helpers for currency magnitudes and playtime.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// scientificCutoff is the largest magnitude still shown with a plain T suffix.
const scientificCutoff = 99999e12

// Round3 rounds to 3 decimal places. Derived economy values (click power,
// displayed magnitudes) are defined at this precision.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// FormatMagnitude renders a currency amount with K/M/B/T suffixes, switching
// to scientific notation (still in trillions) beyond 99999T.
func FormatMagnitude(num float64) string {
	switch {
	case num < 1e3:
		return trimFloat(Round3(num))
	case num < 1e6:
		return trimFloat(Round3(num/1e3)) + "K"
	case num < 1e9:
		return trimFloat(Round3(num/1e6)) + "M"
	case num < 1e12:
		return trimFloat(Round3(num/1e9)) + "B"
	case num < scientificCutoff:
		return trimFloat(Round3(num/1e12)) + "T"
	}
	return exponential(num/1e12) + "T"
}

// FormatExact renders a whole amount with thousands separators, for the
// detailed stats view where suffixes hide too much. Balances past the int64
// range are reachable (prestige costs alone grow to 1e21), so this stays in
// float space.
func FormatExact(num float64) string {
	return humanize.Commaf(math.Floor(num))
}

// FormatDuration renders elapsed seconds as the largest three applicable
// units, from seconds up through years (30-day months).
func FormatDuration(seconds float64) string {
	total := int64(math.Floor(seconds))
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	minutes := total / 60
	secs := total % 60
	if minutes < 60 {
		return fmt.Sprintf("%dmin %ds", minutes, secs)
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours < 24 {
		return fmt.Sprintf("%dh %dmin %ds", hours, mins, secs)
	}
	days := hours / 24
	hrs := hours % 24
	if days < 30 {
		return fmt.Sprintf("%dd %dh %dmin", days, hrs, mins)
	}
	months := days / 30
	dys := days % 30
	if months < 12 {
		return fmt.Sprintf("%dmo %dd %dh", months, dys, hrs)
	}
	years := months / 12
	mos := months % 12
	return fmt.Sprintf("%dy %dmo %dd", years, mos, dys)
}

// trimFloat prints a float without trailing zeros ("5", "5.123", "1.15").
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exponential formats like 2.345e+4 with a minimal exponent (no zero padding).
func exponential(v float64) string {
	s := strconv.FormatFloat(v, 'e', 3, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp := s[:i], s[i+1:]
		sign := ""
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			sign, exp = string(exp[0]), exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		}
		return mant + "e" + sign + exp
	}
	return s
}
