// Command ionoband fetches the most recent usable ionogram for a station and
// prints which ham bands it opens.
//
// Usage:
//
//	ionoband                  # latest AT138 data (last 10 min)
//	ionoband -s EB040         # Ebre station (Spain)
//	ionoband -lb 1h           # data closest to 1 hour ago
//	ionoband -s JR053 -lb 6h  # Juliusruh, 6 hours ago
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/iono-band-advisor/internal/adapter/dias"
	"github.com/couchcryptid/iono-band-advisor/internal/advisor"
	"github.com/couchcryptid/iono-band-advisor/internal/config"
	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/couchcryptid/iono-band-advisor/internal/report"
)

func main() {
	var (
		station  string
		lookback string
		jsonOut  bool
	)
	flag.StringVar(&station, "station", domain.DefaultStation, "ionosonde station code")
	flag.StringVar(&station, "s", domain.DefaultStation, "shorthand for -station")
	flag.StringVar(&lookback, "lookback", domain.DefaultLookback, "time ago to target (1d, 6h, 30m)")
	flag.StringVar(&lookback, "lb", domain.DefaultLookback, "shorthand for -lookback")
	flag.BoolVar(&jsonOut, "json", false, "print the advisory as JSON")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	client := dias.NewClient(cfg.DIASBaseURL, cfg.DIASTimeout, logger)
	adv := advisor.New(client, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	advisory, err := adv.Conditions(ctx, station, lookback)
	if err != nil {
		fail(err)
	}

	if jsonOut {
		data, err := json.MarshalIndent(advisory, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(report.Render(advisory))
}

// fail prints the error with a usage hint and exits non-zero.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Try: ionoband -s EB040 -lb 1d")
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ionoband [flags]

DIAS ionogram fetcher + ham band advisor.

Flags:
  -s, -station STATION     ionosonde station (default %s)
  -lb, -lookback LOOKBACK  time ago to target (default %s)
  -json                    print the advisory as JSON

Lookback format: 1d=1 day, 6h=6 hours, 30m=30 minutes

Stations:
  AT138=Athens GR, EB040=Ebre ES, SO148=Sopron HU, JR053=Juliusruh DE

Examples:
  ionoband                  latest AT138 data (last 10 min)
  ionoband -s EB040         Ebre station (Spain)
  ionoband -lb 1h           data closest to 1 hour ago
  ionoband -s JR053 -lb 6h  Juliusruh, 6 hours ago
`, domain.DefaultStation, domain.DefaultLookback)
}
