package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidLookback rejects lookback specs outside <digits><d|h|m>.
var ErrInvalidLookback = errors.New("invalid lookback (want 1d, 6h, 30m)")

// lookbackRe matches a relative lookback spec: an integer magnitude and a
// unit of days, hours, or minutes, e.g. "1d", "6h", "30m".
var lookbackRe = regexp.MustCompile(`^(\d+)([dhm])$`)

// DefaultLookback selects the most recent sounding.
const DefaultLookback = "10m"

// soundingCadence is the grace added past a lookback target; ionosondes
// sound roughly every 15 minutes.
const soundingCadence = 15 * time.Minute

// Window is an absolute UTC query interval, computed once per invocation and
// handed to the data source as-is. The core never filters by time itself.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseLookback converts a lookback spec into a duration. Matching is
// case-insensitive; anything else, including magnitudes too large for an
// int, is ErrInvalidLookback.
func ParseLookback(spec string) (time.Duration, error) {
	m := lookbackRe.FindStringSubmatch(strings.ToLower(spec))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLookback, spec)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLookback, spec)
	}
	switch m[2] {
	case "d":
		return time.Duration(n) * 24 * time.Hour, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	default:
		return time.Duration(n) * time.Minute, nil
	}
}

// ComputeWindow converts a lookback spec into the absolute UTC interval to
// query. The literal default spec means "most recent": a plain recency
// window ending now. Any other spec targets a moment that far in the past
// and widens the window by the lookback on the early side and one sounding
// cadence on the late side. The default comparison is exact; case variants
// of it take the general path.
func ComputeWindow(spec string) (Window, error) {
	now := clock.Now().UTC()
	if spec == DefaultLookback {
		return Window{Start: now.Add(-10 * time.Minute), End: now}, nil
	}
	d, err := ParseLookback(spec)
	if err != nil {
		return Window{}, err
	}
	target := now.Add(-d)
	return Window{Start: target.Add(-d), End: target.Add(soundingCadence)}, nil
}
