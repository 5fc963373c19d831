package advisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// --- mock fetcher ---

type mockFetcher struct {
	soundings []domain.Sounding
	err       error
	calls     int
	station   string
	window    domain.Window
}

func (m *mockFetcher) FetchSoundings(_ context.Context, station string, w domain.Window) ([]domain.Sounding, error) {
	m.calls++
	m.station = station
	m.window = w
	return m.soundings, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSoundings() []domain.Sounding {
	return []domain.Sounding{
		{Timestamp: "2026-02-11T11:30:00Z", MufD: "abc", FoF2: "5.0", Fmin: "2.0"},
		{Timestamp: "2026-02-11T11:45:00Z", MufD: "24.5", FoF2: "6.2", Fmin: "2.1"},
	}
}

// --- tests ---

func TestAdvisor_Conditions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	defer domain.SetClock(nil)

	t.Run("assembles the advisory", func(t *testing.T) {
		fetcher := &mockFetcher{soundings: validSoundings()}
		a := New(fetcher, discardLogger())

		adv, err := a.Conditions(context.Background(), "AT138", "10m")
		require.NoError(t, err)

		assert.Equal(t, "AT138", adv.Station)
		assert.Equal(t, "Athens, Greece", adv.Location)
		assert.Equal(t, now, adv.GeneratedAt)
		assert.Equal(t, now.Add(-10*time.Minute), adv.Window.Start)
		assert.Equal(t, now, adv.Window.End)
		assert.Equal(t, "2026-02-11T11:45:00Z", adv.Sounding.Timestamp)

		require.Len(t, adv.Bands, len(domain.HamBands))
		assert.Equal(t, "40m", adv.Bands[3].Name)
		assert.Equal(t, domain.StatusOpen, adv.Bands[3].Status)

		assert.Equal(t, "AT138", fetcher.station)
		assert.Equal(t, adv.Window, fetcher.window)
	})

	t.Run("canonicalizes the station code", func(t *testing.T) {
		fetcher := &mockFetcher{soundings: validSoundings()}
		a := New(fetcher, discardLogger())

		adv, err := a.Conditions(context.Background(), "at138", "10m")
		require.NoError(t, err)
		assert.Equal(t, "AT138", adv.Station)
		assert.Equal(t, "AT138", fetcher.station)
	})

	t.Run("unknown station", func(t *testing.T) {
		fetcher := &mockFetcher{}
		a := New(fetcher, discardLogger())

		_, err := a.Conditions(context.Background(), "XX999", "10m")
		assert.ErrorIs(t, err, domain.ErrUnknownStation)
		assert.Zero(t, fetcher.calls, "fetch should not run for an unknown station")
	})

	t.Run("malformed lookback", func(t *testing.T) {
		fetcher := &mockFetcher{}
		a := New(fetcher, discardLogger())

		_, err := a.Conditions(context.Background(), "AT138", "1x")
		assert.ErrorIs(t, err, domain.ErrInvalidLookback)
		assert.Zero(t, fetcher.calls)
	})

	t.Run("fetch failure", func(t *testing.T) {
		fetcher := &mockFetcher{err: errors.New("connection refused")}
		a := New(fetcher, discardLogger())

		_, err := a.Conditions(context.Background(), "AT138", "10m")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AT138")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("station silent", func(t *testing.T) {
		fetcher := &mockFetcher{}
		a := New(fetcher, discardLogger())

		_, err := a.Conditions(context.Background(), "SO148", "10m")
		assert.ErrorIs(t, err, domain.ErrNoData)
		assert.Contains(t, err.Error(), "SO148")
	})

	t.Run("station reporting garbage", func(t *testing.T) {
		fetcher := &mockFetcher{soundings: []domain.Sounding{
			{Timestamp: "2026-02-11T11:45:00Z", MufD: "---", FoF2: ""},
		}}
		a := New(fetcher, discardLogger())

		_, err := a.Conditions(context.Background(), "JR053", "10m")
		assert.ErrorIs(t, err, domain.ErrNoValidData)
		assert.Contains(t, err.Error(), "JR053")
	})
}
