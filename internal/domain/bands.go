package domain

// Band is one amateur allocation, edges in MHz.
type Band struct {
	Name    string  `json:"band"`
	LowMHz  float64 `json:"low_mhz"`
	HighMHz float64 `json:"high_mhz"`
}

// Center returns the band's midpoint frequency, the reference point for
// classification.
func (b Band) Center() float64 {
	return (b.LowMHz + b.HighMHz) / 2
}

// Status is the operability classification of one band for one sounding.
type Status string

const (
	StatusAbsorbed Status = "ABSORBED" // lower edge under the absorption floor
	StatusOpen     Status = "OPEN"     // comfortable margin below the MUF
	StatusNVIS     Status = "NVIS"     // near-vertical-incidence paths viable
	StatusMarginal Status = "MARGINAL" // close to the MUF, unreliable
	StatusClosed   Status = "CLOSED"
)

// HamBands is the IARU Region 1 HF allocation table. Order is a contract:
// classification output and rendered reports preserve it. Initialized once,
// treated as read-only.
var HamBands = []Band{
	{Name: "160m", LowMHz: 1.8, HighMHz: 2.0},
	{Name: "80m", LowMHz: 3.5, HighMHz: 3.8},
	{Name: "60m", LowMHz: 5.3, HighMHz: 5.4},
	{Name: "40m", LowMHz: 7.0, HighMHz: 7.2},
	{Name: "30m", LowMHz: 10.1, HighMHz: 10.15},
	{Name: "20m", LowMHz: 14.0, HighMHz: 14.35},
	{Name: "17m", LowMHz: 18.068, HighMHz: 18.168},
	{Name: "15m", LowMHz: 21.0, HighMHz: 21.45},
	{Name: "12m", LowMHz: 24.89, HighMHz: 24.99},
	{Name: "10m", LowMHz: 28.0, HighMHz: 29.7},
}
