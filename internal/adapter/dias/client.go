// Package dias fetches scaled ionogram records from the DIAS ionostream API.
package dias

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// pageLimit caps how many records one window query returns.
const pageLimit = 100

// Client queries the ionostream pager endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a pager client. baseURL is the API root without the
// trailing /pager.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchSoundings returns one station's scaled records inside the window,
// oldest first, as the API delivers them. One request per call; retry policy
// belongs to the caller.
func (c *Client) FetchSoundings(ctx context.Context, station string, w domain.Window) ([]domain.Sounding, error) {
	params := url.Values{
		"station": {station},
		"start":   {w.Start.UTC().Format(time.RFC3339)},
		"end":     {w.End.UTC().Format(time.RFC3339)},
		"limit":   {strconv.Itoa(pageLimit)},
	}

	fullURL := c.baseURL + "/pager?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pager request for %s: %w", station, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dias API error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	soundings, err := ParsePager(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched soundings",
		"station", station,
		"start", w.Start,
		"end", w.End,
		"count", len(soundings),
	)
	return soundings, nil
}

// ParsePager decodes a pager payload into soundings, preserving item order.
// The fixture tools share this with the client so generated files go through
// the same decoding as live responses.
func ParsePager(data []byte) ([]domain.Sounding, error) {
	var page pagerResponse
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode pager payload: %w", err)
	}

	soundings := make([]domain.Sounding, 0, len(page.Items))
	for _, item := range page.Items {
		soundings = append(soundings, domain.Sounding{
			Timestamp: string(item.Dataset.Timestamp),
			MufD:      string(item.Scaled.MufD),
			FoF2:      string(item.Scaled.FoF2),
			Fmin:      string(item.Scaled.Fmin),
		})
	}
	return soundings, nil
}

// Pager response types. Scaled characteristics arrive as strings or numbers
// depending on the autoscaler run; rawValue keeps the literal text either way.

type pagerResponse struct {
	Items []pagerItem `json:"items"`
}

type pagerItem struct {
	Dataset pagerDataset `json:"dataset"`
	Scaled  pagerScaled  `json:"scaled"`
}

type pagerDataset struct {
	Timestamp rawValue `json:"timestamp"`
}

type pagerScaled struct {
	MufD rawValue `json:"mufD"`
	FoF2 rawValue `json:"foF2"`
	Fmin rawValue `json:"fmin"`
}

// rawValue decodes a JSON scalar into its literal text: quoted strings are
// unquoted, numbers keep their digits, null and absent become empty.
// Non-scalar values keep their raw encoding and fail usability checks
// downstream.
type rawValue string

func (v *rawValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = rawValue(s)
		return nil
	}
	*v = rawValue(data)
	return nil
}
