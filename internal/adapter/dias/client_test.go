package dias

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testWindow() domain.Window {
	return domain.Window{
		Start: time.Date(2026, 2, 11, 11, 50, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC),
	}
}

func TestClient_FetchSoundings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pager", r.URL.Path)
		assert.Equal(t, "AT138", r.URL.Query().Get("station"))
		assert.Equal(t, "2026-02-11T11:50:00Z", r.URL.Query().Get("start"))
		assert.Equal(t, "2026-02-11T12:00:00Z", r.URL.Query().Get("end"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set(headerContentType, contentTypeJSON)
		// Scaled values as strings, numbers, null, and absent keys.
		_, _ = w.Write([]byte(`{"items":[
			{"dataset":{"timestamp":"2026-02-11T11:45:00Z"},"scaled":{"mufD":"21.4","foF2":"5.6","fmin":"2.2"}},
			{"dataset":{"timestamp":"2026-02-11T11:50:00Z"},"scaled":{"mufD":19.75,"foF2":5,"fmin":null}},
			{"dataset":{},"scaled":{"foF2":"5.1"}}
		]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	soundings, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.NoError(t, err)
	require.Len(t, soundings, 3)

	assert.Equal(t, domain.Sounding{
		Timestamp: "2026-02-11T11:45:00Z", MufD: "21.4", FoF2: "5.6", Fmin: "2.2",
	}, soundings[0])

	// Numbers keep their literal digits; null becomes empty.
	assert.Equal(t, domain.Sounding{
		Timestamp: "2026-02-11T11:50:00Z", MufD: "19.75", FoF2: "5", Fmin: "",
	}, soundings[1])

	// Absent keys decode to empty values.
	assert.Equal(t, domain.Sounding{FoF2: "5.1"}, soundings[2])
}

func TestClient_FetchSoundings_EmptyWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	soundings, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.NoError(t, err)
	assert.Empty(t, soundings)
}

func TestClient_FetchSoundings_MissingItemsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	soundings, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.NoError(t, err)
	assert.Empty(t, soundings)
}

func TestClient_FetchSoundings_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestClient_FetchSoundings_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"items":[`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode pager payload")
}

func TestClient_FetchSoundings_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Client{
		httpClient: &http.Client{Timeout: 50 * time.Millisecond},
		baseURL:    srv.URL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	_, err := c.FetchSoundings(context.Background(), "AT138", testWindow())
	require.Error(t, err)
}

func TestParsePager(t *testing.T) {
	payload := []byte(`{"items":[
		{"dataset":{"timestamp":"2026-02-11T11:30:00Z"},"scaled":{"mufD":18.2,"foF2":"4.9","fmin":2}},
		{"dataset":{"timestamp":"2026-02-11T11:45:00Z"},"scaled":{"mufD":"abc"}}
	]}`)

	soundings, err := ParsePager(payload)
	require.NoError(t, err)
	require.Len(t, soundings, 2)
	assert.Equal(t, domain.Sounding{
		Timestamp: "2026-02-11T11:30:00Z", MufD: "18.2", FoF2: "4.9", Fmin: "2",
	}, soundings[0])
	assert.Equal(t, domain.Sounding{
		Timestamp: "2026-02-11T11:45:00Z", MufD: "abc",
	}, soundings[1])

	_, err = ParsePager([]byte(`not json`))
	require.Error(t, err)
}

func TestRawValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"quoted string", `"24.5"`, "24.5"},
		{"number", `24.5`, "24.5"},
		{"integer number", `5`, "5"},
		{"null", `null`, ""},
		{"non-scalar keeps raw text", `[1,2]`, "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v rawValue
			require.NoError(t, v.UnmarshalJSON([]byte(tt.payload)))
			assert.Equal(t, tt.expected, string(v))
		})
	}
}
