// Package watch polls a station on a fixed cadence and publishes the
// resulting band advisories.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/couchcryptid/iono-band-advisor/internal/observability"
)

// ConditionsProvider produces the current advisory for a station.
type ConditionsProvider interface {
	Conditions(ctx context.Context, station, lookback string) (domain.Advisory, error)
}

// Publisher delivers an advisory to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, adv domain.Advisory) error
}

var statusOrder = []domain.Status{
	domain.StatusAbsorbed,
	domain.StatusOpen,
	domain.StatusNVIS,
	domain.StatusMarginal,
	domain.StatusClosed,
}

// Watcher orchestrates the advise-publish loop for one station.
type Watcher struct {
	provider  ConditionsProvider
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool

	station  string
	lookback string
	interval time.Duration
}

// New creates a Watcher that polls station every interval.
func New(provider ConditionsProvider, publisher Publisher, station, lookback string, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Watcher {
	return &Watcher{
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		station:   station,
		lookback:  lookback,
		interval:  interval,
	}
}

// CheckReadiness returns nil once the watcher has published at least one
// advisory, or an error describing why the service is not yet ready.
func (w *Watcher) CheckReadiness(_ context.Context) error {
	if !w.ready.Load() {
		return errors.New("watcher has not published an advisory yet")
	}
	return nil
}

// Run executes the advise-publish loop until the context is cancelled.
// A failed poll is dropped; the next attempt waits for the next tick, so a
// flaky station never triggers more than one upstream request per interval.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watcher started",
		"station", w.station,
		"lookback", w.lookback,
		"interval", w.interval,
	)
	w.metrics.WatcherRunning.Set(1)
	defer w.metrics.WatcherRunning.Set(0)

	for {
		w.poll(ctx)

		if !sleepWithContext(ctx, w.interval) {
			w.logger.Info("watcher stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// poll runs one advise-publish cycle.
func (w *Watcher) poll(ctx context.Context) {
	start := time.Now()

	adv, err := w.provider.Conditions(ctx, w.station, w.lookback)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("advise failed", "station", w.station, "error", err)
		w.metrics.PollFailures.WithLabelValues("advise").Inc()
		return
	}
	w.metrics.AdviseDuration.Observe(time.Since(start).Seconds())

	pubStart := time.Now()
	if err := w.publisher.Publish(ctx, adv); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("publish failed", "station", w.station, "error", err)
		w.metrics.PollFailures.WithLabelValues("publish").Inc()
		return
	}
	w.metrics.PublishDuration.Observe(time.Since(pubStart).Seconds())

	w.metrics.AdvisoriesPublished.Inc()
	w.observeBandStatuses(adv)
	w.ready.Store(true)

	w.logger.Debug("advisory published",
		"station", adv.Station,
		"sounding_timestamp", adv.Sounding.Timestamp,
	)
}

// observeBandStatuses sets one gauge per status so absent statuses read zero
// instead of going stale.
func (w *Watcher) observeBandStatuses(adv domain.Advisory) {
	counts := make(map[domain.Status]int, len(statusOrder))
	for _, bc := range adv.Bands {
		counts[bc.Status]++
	}
	for _, s := range statusOrder {
		w.metrics.BandsByStatus.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
