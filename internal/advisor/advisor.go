// Package advisor assembles band advisories from ionogram soundings.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// SoundingFetcher retrieves one station's scaled records inside a window.
type SoundingFetcher interface {
	FetchSoundings(ctx context.Context, station string, w domain.Window) ([]domain.Sounding, error)
}

// ConditionsProvider is the advisory lookup surface shared by the watcher
// and the HTTP conditions endpoint.
type ConditionsProvider interface {
	Conditions(ctx context.Context, station, lookback string) (domain.Advisory, error)
}

// Advisor derives a band advisory for a station from its freshest usable
// sounding: compute the lookback window, fetch the window's records, select
// the best one, classify every band.
type Advisor struct {
	fetcher SoundingFetcher
	logger  *slog.Logger
}

// New creates an Advisor over a sounding source.
func New(fetcher SoundingFetcher, logger *slog.Logger) *Advisor {
	return &Advisor{fetcher: fetcher, logger: logger}
}

// Conditions produces the advisory for one station and lookback spec. The
// domain sentinels (ErrUnknownStation, ErrInvalidLookback, ErrNoData,
// ErrNoValidData) surface wrapped, so callers can branch with errors.Is.
func (a *Advisor) Conditions(ctx context.Context, stationCode, lookback string) (domain.Advisory, error) {
	station, err := domain.LookupStation(stationCode)
	if err != nil {
		return domain.Advisory{}, err
	}

	window, err := domain.ComputeWindow(lookback)
	if err != nil {
		return domain.Advisory{}, err
	}

	soundings, err := a.fetcher.FetchSoundings(ctx, station.Code, window)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("fetch soundings for %s: %w", station.Code, err)
	}

	best, err := domain.SelectBest(soundings)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("%w for %s", err, station.Code)
	}

	a.logger.Debug("selected sounding",
		"station", station.Code,
		"timestamp", best.Timestamp,
		"mufD", best.MufD,
		"foF2", best.FoF2,
		"fmin", best.Fmin,
	)

	return domain.Advisory{
		Station:     station.Code,
		Location:    station.Location,
		GeneratedAt: domain.Now(),
		Window:      window,
		Sounding:    best,
		Bands:       domain.Classify(best.MufD, best.FoF2, best.Fmin, domain.HamBands),
	}, nil
}
