package domain

import (
	"math"
	"strconv"
	"strings"
)

// Usable scaled values lie in [0.1, 50.0] MHz: below 0.1 is under the HF
// floor, above 50.0 is outside the sounder sweep.
const (
	usableMin = 0.1
	usableMax = 50.0
)

// parseUsable parses a raw scaled value and reports whether it is usable.
// strconv accepts "NaN" and "Inf" spellings, so non-finite results are
// rejected explicitly.
func parseUsable(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < usableMin || v > usableMax {
		return 0, false
	}
	return v, true
}

// IsUsable reports whether a raw scaled value parses as a finite number in
// the usable range. Missing, malformed, non-finite, and out-of-range values
// are all unusable; IsUsable never panics on bad input.
func IsUsable(raw string) bool {
	_, ok := parseUsable(raw)
	return ok
}

// UsableOr returns the parsed value when raw is usable, fallback otherwise.
// Every substitution of unusable input into arithmetic goes through here.
func UsableOr(raw string, fallback float64) float64 {
	v, ok := parseUsable(raw)
	if !ok {
		return fallback
	}
	return v
}
