package domain

// Classification thresholds relative to the measured parameters.
const (
	openMargin     = 0.85 // band center under this fraction of MUF: open
	marginalMargin = 0.95 // under this fraction: usable but unreliable
	nvisFactor     = 1.3  // NVIS works up to this multiple of foF2
)

// Fallbacks substituted for unusable inputs. Zero mufD/foF2 fails every
// propagation threshold; 3.0 MHz keeps the absorption check meaningful.
const (
	fallbackMufD = 0.0
	fallbackFoF2 = 0.0
	fallbackFmin = 3.0
)

// Classify assigns an operability status to every band, in band-table order.
// Raw inputs are substituted with the fixed fallbacks before any arithmetic.
// Per band the first matching rule wins: a lower edge under the absorption
// floor is ABSORBED; a center comfortably under the MUF is OPEN; a center
// within NVIS reach of foF2 is NVIS; a center just under the MUF is
// MARGINAL; everything else is CLOSED. Pure total function: exactly one
// status per band, identical inputs give identical output.
func Classify(mufD, foF2, fmin string, bands []Band) []BandCondition {
	muf := UsableOr(mufD, fallbackMufD)
	f2 := UsableOr(foF2, fallbackFoF2)
	floor := UsableOr(fmin, fallbackFmin)

	conditions := make([]BandCondition, 0, len(bands))
	for _, b := range bands {
		center := b.Center()

		var status Status
		switch {
		case floor > b.LowMHz:
			status = StatusAbsorbed
		case center < muf*openMargin:
			status = StatusOpen
		case center < f2*nvisFactor:
			status = StatusNVIS
		case center < muf*marginalMargin:
			status = StatusMarginal
		default:
			status = StatusClosed
		}
		conditions = append(conditions, BandCondition{Band: b, Status: status})
	}
	return conditions
}
