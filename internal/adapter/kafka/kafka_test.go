package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	adv := domain.Advisory{
		Station:     "AT138",
		Location:    "Athens, Greece",
		GeneratedAt: now,
		Sounding: domain.Sounding{
			Timestamp: "2026-02-11T11:45:00Z",
			MufD:      "24.5",
			FoF2:      "6.2",
			Fmin:      "2.1",
		},
		Bands: domain.Classify("24.5", "6.2", "2.1", domain.HamBands),
	}

	msg, err := serializeToMessage(adv)
	require.NoError(t, err)

	assert.Equal(t, []byte("AT138"), msg.Key)
	assert.Contains(t, string(msg.Value), `"station":"AT138"`)
	assert.Contains(t, string(msg.Value), `"band":"40m"`)
	assert.Contains(t, string(msg.Value), `"status":"OPEN"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "station", msg.Headers[0].Key)
	assert.Equal(t, []byte("AT138"), msg.Headers[0].Value)
	assert.Equal(t, "generated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_KeyFollowsStation(t *testing.T) {
	msg, err := serializeToMessage(domain.Advisory{Station: "EB040"})
	require.NoError(t, err)
	assert.Equal(t, []byte("EB040"), msg.Key)
	assert.Equal(t, []byte("EB040"), msg.Headers[0].Value)
}
