// Package domain models DIAS ionogram soundings and derives amateur-radio
// band-availability advice from them.
//
// # Data Source
//
// Soundings originate from the DIAS ionospheric service at the National
// Observatory of Athens (electron.space.noa.gr). The ionostream pager endpoint
// returns scaled ionogram characteristics for one station over a UTC time
// window, oldest record first. The adapter decodes each record into a
// [Sounding] without interpreting the values.
//
// # Scaled Value Conventions
//
//	mufD: Maximum Usable Frequency MUF(D) in MHz, the highest frequency the
//	      ionosphere reflects over a reference hop.
//	foF2: critical frequency of the F2 layer in MHz at vertical incidence.
//	fmin: lowest frequency returning an echo in MHz; proxy for the D-layer
//	      absorption floor.
//
// Values arrive as JSON strings or numbers and are routinely missing or
// non-numeric when the autoscaler cannot fit a trace. A value is usable iff
// it parses as a finite number in [0.1, 50.0] MHz. Unusable values never
// enter arithmetic: selection skips records whose mufD or foF2 is unusable,
// and classification substitutes fixed fallbacks (0.0 for mufD and foF2,
// 3.0 MHz for fmin). See [IsUsable] and [UsableOr].
//
// # Record Selection
//
// [SelectBest] scans the window's records in reverse and returns the first
// with usable mufD and foF2, preferring the freshest trustworthy reading over
// interpolating across records. fmin does not participate in selection; it
// has a classification-time fallback. "Zero records" and "records but none
// usable" are distinct failures ([ErrNoData], [ErrNoValidData]).
//
// # Lookback Windows
//
// A lookback spec is <digits><d|h|m>, e.g. "1d", "6h", "30m". The default
// "10m" asks for the most recent sounding: window [now-10m, now]. Any other
// spec targets a past moment: for lookback d the window is
// [now-2d, now-d+15m], widened on both sides of the target because
// ionosondes sound on a roughly 15-minute cadence. See [ComputeWindow].
//
// # Band Classification
//
// [Classify] walks the fixed IARU Region 1 table ([HamBands]) and assigns
// each band one of five statuses from (mufD, foF2, fmin). With
// center = (low+high)/2, the first rule that matches wins:
//
//	fmin > low           → ABSORBED (lower edge under the absorption floor)
//	center < mufD * 0.85 → OPEN
//	center < foF2 * 1.3  → NVIS (near-vertical-incidence skywave)
//	center < mufD * 0.95 → MARGINAL
//	otherwise            → CLOSED
//
// Output preserves table order.
package domain
