package domain

import "time"

// BandCondition pairs a band with its classified status.
type BandCondition struct {
	Band
	Status Status `json:"status"`
}

// Advisory is the assembled band-availability advice for one station at one
// point in time: the payload published to the advisory topic and returned by
// the conditions endpoint. Sounding values stay raw; Bands preserves the
// allocation-table order.
type Advisory struct {
	Station     string          `json:"station"`
	Location    string          `json:"location,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Window      Window          `json:"window"`
	Sounding    Sounding        `json:"sounding"`
	Bands       []BandCondition `json:"bands"`
}
