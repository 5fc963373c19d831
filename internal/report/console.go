// Package report renders advisories for terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

const ruleWidth = 50

const timeLayout = "2006-01-02T15:04:05"

// Render formats adv as the fixed-width ionogram report: a banner, the
// sounding values as reported by the station, and one line per ham band.
// Values the station did not report render as "N/A".
func Render(adv domain.Advisory) string {
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "IONOGRAM DATA - %s\n", adv.Station)
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Station:        %s\n", adv.Station)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Current time:   %s\n", adv.GeneratedAt.UTC().Format(timeLayout))
	fmt.Fprintf(&b, "Data timestamp: %s\n", timestampLabel(adv.Sounding.Timestamp))
	b.WriteString("\n")
	fmt.Fprintf(&b, "MUF:            %s MHz\n", orNA(adv.Sounding.MufD))
	fmt.Fprintf(&b, "FoF2 (NVIS):    %s MHz\n", orNA(adv.Sounding.FoF2))
	fmt.Fprintf(&b, "fmin:           %s MHz\n", orNA(adv.Sounding.Fmin))

	b.WriteString("\nAVAILABLE BANDS (IARU R1):\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, bc := range adv.Bands {
		fmt.Fprintf(&b, "  %4s (%4.1f-%4.1f MHz): %s %s\n",
			bc.Name, bc.LowMHz, bc.HighMHz, glyph(bc.Status), bc.Status)
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// timestampLabel strips the UTC marker so the line matches the current-time
// line above it.
func timestampLabel(ts string) string {
	if ts == "" {
		return "N/A"
	}
	return strings.ReplaceAll(ts, "Z", "")
}

func orNA(raw string) string {
	if raw == "" {
		return "N/A"
	}
	return raw
}

func glyph(s domain.Status) string {
	switch s {
	case domain.StatusOpen, domain.StatusNVIS:
		return "\U0001F7E2" // green circle
	case domain.StatusMarginal:
		return "\U0001F7E1" // yellow circle
	default:
		return "\U0001F534" // red circle
	}
}
