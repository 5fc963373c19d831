package domain

// Sounding is one ionogram measurement as delivered by the data source.
// Scaled values keep their raw string form: upstream emits strings, numbers,
// or nothing at all, and reports display exactly what the station sent.
// Numeric interpretation goes through IsUsable and UsableOr only.
type Sounding struct {
	Timestamp string `json:"timestamp"` // ISO-8601-ish, may be malformed or absent
	MufD      string `json:"mufD"`
	FoF2      string `json:"foF2"`
	Fmin      string `json:"fmin"`
}
