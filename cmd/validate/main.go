// Command validate performs integrity checks on a pager JSON fixture: payload
// shape, feed chronology, and record selection. It decodes the fixture with
// the same adapter code the live client uses, so a fixture that passes here
// behaves identically in the advisory pipeline.
//
// Usage:
//
//	go run ./cmd/validate -file testdata/at138_pager.json
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/adapter/dias"
	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	file := flag.String("file", "", "path to a pager JSON fixture")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*file); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Ionogram Fixture Validation ===")
	fmt.Println()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read fixture: %v\n", err)
		return 1
	}

	soundings, err := dias.ParsePager(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	// ── Run validation phases ──
	phases := []*phase{
		validateShape(soundings),
		validateChronology(soundings),
		validateSelection(soundings),
	}

	// ── Report results ──
	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-38s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d items, usable mufD %d, foF2 %d, fmin %d\n",
		len(soundings),
		countUsable(soundings, func(s domain.Sounding) string { return s.MufD }),
		countUsable(soundings, func(s domain.Sounding) string { return s.FoF2 }),
		countUsable(soundings, func(s domain.Sounding) string { return s.Fmin }))

	// Print detailed errors.
	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
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

// ── Phase 1: Payload Shape ──
// Every item needs a parseable dataset timestamp; scaled values may be
// anything, including absent.

func validateShape(soundings []domain.Sounding) *phase {
	p := &phase{name: "Phase 1: Payload Shape"}

	if len(soundings) == 0 {
		p.errorf("fixture has no items")
		return p
	}

	for i, s := range soundings {
		if s.Timestamp == "" {
			p.errorf("item %d: missing dataset timestamp", i)
			continue
		}
		if _, err := time.Parse(time.RFC3339, s.Timestamp); err != nil {
			p.errorf("item %d: timestamp %q is not RFC 3339", i, s.Timestamp)
		}
	}
	return p
}

// ── Phase 2: Feed Chronology ──
// The pager delivers oldest first; newest-last ordering is what record
// selection scans against.

func validateChronology(soundings []domain.Sounding) *phase {
	p := &phase{name: "Phase 2: Feed Chronology"}

	var prev time.Time
	var prevIdx int
	havePrev := false
	for i, s := range soundings {
		ts, err := time.Parse(time.RFC3339, s.Timestamp)
		if err != nil {
			continue // already flagged in phase 1
		}
		if havePrev && ts.Before(prev) {
			p.errorf("item %d (%s) precedes item %d (%s)",
				i, ts.Format(time.RFC3339), prevIdx, prev.Format(time.RFC3339))
		}
		prev, prevIdx, havePrev = ts, i, true
	}
	return p
}

// ── Phase 3: Record Selection ──
// The fixture must contain at least one record the advisor would accept.

func validateSelection(soundings []domain.Sounding) *phase {
	p := &phase{name: "Phase 3: Record Selection"}

	best, err := domain.SelectBest(soundings)
	if err != nil {
		p.errorf("%v", err)
		return p
	}

	for i := len(soundings) - 1; i >= 0; i-- {
		if soundings[i] == best {
			fmt.Printf("  Note: selected item %d of %d (%s)\n", i, len(soundings), best.Timestamp)
			break
		}
	}

	conditions := domain.Classify(best.MufD, best.FoF2, best.Fmin, domain.HamBands)
	counts := map[domain.Status]int{}
	for _, c := range conditions {
		counts[c.Status]++
	}
	fmt.Printf("  Note: bands OPEN=%d NVIS=%d MARGINAL=%d ABSORBED=%d CLOSED=%d\n",
		counts[domain.StatusOpen], counts[domain.StatusNVIS], counts[domain.StatusMarginal],
		counts[domain.StatusAbsorbed], counts[domain.StatusClosed])

	return p
}
