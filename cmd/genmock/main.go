// Command genmock generates synthetic pager JSON fixtures for the advisory
// test suites. Records run oldest first on a fixed cadence, mix string and
// numeric scaled values the way live autoscaler output does, and a -bad
// fraction of records gets corrupted values. The finished payload is fed
// back through the adapter decoding so the printed stats match real
// pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -out testdata/at138_pager.json -count 8 -bad 0.25
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/adapter/dias"
	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// baseTime anchors the newest record so fixtures are reproducible.
var baseTime = time.Date(2026, time.February, 11, 12, 0, 0, 0, time.UTC)

// Output wire shape. Scaled fields hold float64 or string so the marshaled
// JSON mixes numbers and quoted values; nil drops the key entirely.
type outPayload struct {
	Items []outItem `json:"items"`
}

type outItem struct {
	Dataset outDataset `json:"dataset"`
	Scaled  outScaled  `json:"scaled"`
}

type outDataset struct {
	Timestamp string `json:"timestamp"`
}

type outScaled struct {
	MufD any `json:"mufD,omitempty"`
	FoF2 any `json:"foF2,omitempty"`
	Fmin any `json:"fmin,omitempty"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the pager JSON fixture")
	station := flag.String("station", domain.DefaultStation, "station code recorded in the log output")
	count := flag.Int("count", 8, "number of records to generate")
	interval := flag.Duration("interval", 15*time.Minute, "cadence between records")
	bad := flag.Float64("bad", 0, "fraction of records given unusable values (0..1)")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))

	items := make([]outItem, 0, *count)
	for i := 0; i < *count; i++ {
		ts := baseTime.Add(-time.Duration(*count-1-i) * *interval)
		items = append(items, outItem{
			Dataset: outDataset{Timestamp: ts.UTC().Format(time.RFC3339)},
			Scaled:  genScaled(rng, *bad),
		})
	}

	data, err := json.MarshalIndent(outPayload{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	log.Printf("%s: wrote %d records to %s", *station, len(items), *out)

	soundings, err := dias.ParsePager(data)
	if err != nil {
		return fmt.Errorf("round-trip decode: %w", err)
	}
	printStats(soundings)
	return nil
}

// genScaled produces plausible mid-latitude ionogram values: foF2 in the
// 3-8 MHz range, MUF roughly 2.5-4x foF2, fmin between 1.5 and 3.5 MHz.
func genScaled(rng *rand.Rand, bad float64) outScaled {
	foF2 := 3 + rng.Float64()*5
	mufD := foF2 * (2.5 + rng.Float64()*1.5)
	fmin := 1.5 + rng.Float64()*2

	sc := outScaled{
		MufD: numOrString(rng, mufD),
		FoF2: numOrString(rng, foF2),
		Fmin: numOrString(rng, fmin),
	}

	if rng.Float64() < bad {
		corrupt(rng, &sc)
	}
	return sc
}

// numOrString rounds to two decimals and returns a quoted value about a
// quarter of the time.
func numOrString(rng *rand.Rand, v float64) any {
	v = math.Round(v*100) / 100
	if rng.Intn(4) == 0 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return v
}

// corrupt replaces one scaled field with a value the validator must reject:
// non-numeric text, an empty string, a missing key, or an out-of-range
// number.
func corrupt(rng *rand.Rand, sc *outScaled) {
	badValues := []any{"abc", "", nil, 99.9, 0.0}
	v := badValues[rng.Intn(len(badValues))]

	switch rng.Intn(3) {
	case 0:
		sc.MufD = v
	case 1:
		sc.FoF2 = v
	default:
		sc.Fmin = v
	}
}

func printStats(soundings []domain.Sounding) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(soundings))
	fmt.Printf("Usable: mufD=%d foF2=%d fmin=%d\n",
		countUsable(soundings, func(s domain.Sounding) string { return s.MufD }),
		countUsable(soundings, func(s domain.Sounding) string { return s.FoF2 }),
		countUsable(soundings, func(s domain.Sounding) string { return s.Fmin }))

	best, err := domain.SelectBest(soundings)
	if err != nil {
		fmt.Printf("Selection: %v\n", err)
		return
	}
	fmt.Printf("Selected: %s (mufD=%s foF2=%s fmin=%s)\n",
		best.Timestamp, best.MufD, best.FoF2, best.Fmin)

	counts := map[domain.Status]int{}
	for _, c := range domain.Classify(best.MufD, best.FoF2, best.Fmin, domain.HamBands) {
		counts[c.Status]++
	}
	fmt.Printf("Bands: OPEN=%d NVIS=%d MARGINAL=%d ABSORBED=%d CLOSED=%d\n",
		counts[domain.StatusOpen], counts[domain.StatusNVIS], counts[domain.StatusMarginal],
		counts[domain.StatusAbsorbed], counts[domain.StatusClosed])
}

func countUsable(soundings []domain.Sounding, field func(domain.Sounding) string) int {
	n := 0
	for _, s := range soundings {
		if domain.IsUsable(field(s)) {
			n++
		}
	}
	return n
}
