package domain

import "errors"

// Selection failures. ErrNoData means the source returned zero candidate
// records (station silent); ErrNoValidData means records arrived but none
// carried usable mufD and foF2 (station reporting garbage). Callers rely on
// the distinction.
var (
	ErrNoData      = errors.New("no sounding data")
	ErrNoValidData = errors.New("no valid sounding data")
)

// SelectBest returns the most recent sounding whose mufD and foF2 are both
// usable. Input arrives oldest first, so the scan runs in reverse. fmin is
// not consulted here; an unusable fmin gets a default at classification time.
func SelectBest(soundings []Sounding) (Sounding, error) {
	if len(soundings) == 0 {
		return Sounding{}, ErrNoData
	}
	for i := len(soundings) - 1; i >= 0; i-- {
		s := soundings[i]
		if IsUsable(s.MufD) && IsUsable(s.FoF2) {
			return s, nil
		}
	}
	return Sounding{}, ErrNoValidData
}
