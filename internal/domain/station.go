package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStation rejects station codes outside the known ionosonde set.
var ErrUnknownStation = errors.New("unknown station")

// Station is one ionosonde observation site reachable through the DIAS API.
type Station struct {
	Code     string `json:"code"`
	Location string `json:"location,omitempty"` // not every station carries one upstream
}

// DefaultStation is queried when no station is requested.
const DefaultStation = "AT138"

// Stations is the known ionosonde set, in display order. Initialized once,
// treated as read-only.
var Stations = []Station{
	{Code: "AT138", Location: "Athens, Greece"},
	{Code: "EB040", Location: "Ebre, Spain"},
	{Code: "SO148", Location: "Sopron, Hungary"},
	{Code: "JR053", Location: "Juliusruh, Germany"},
	{Code: "MD031"},
	{Code: "NA325"},
}

// LookupStation resolves a station code against the known set. Matching is
// case-insensitive; the returned Station carries the canonical code the API
// expects.
func LookupStation(code string) (Station, error) {
	for _, s := range Stations {
		if strings.EqualFold(s.Code, code) {
			return s, nil
		}
	}
	return Station{}, fmt.Errorf("%w: %q", ErrUnknownStation, code)
}
