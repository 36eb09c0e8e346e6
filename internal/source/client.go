// Package source fetches the per-country time-series feed over HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"covid_dashboard/internal/logger"
	"covid_dashboard/internal/models"

	json "github.com/goccy/go-json"
)

// Errors returned by Fetch.
var (
	ErrUnexpectedStatus = errors.New("unexpected feed status")
	ErrMalformedFeed    = errors.New("malformed feed")
)

// feedDateLayouts accepts both "2020-1-22" (as published by the feed) and zero-padded dates.
var feedDateLayouts = []string{"2006-1-2", time.RFC3339}

// maxFeedBytes caps the response body read into memory.
const maxFeedBytes = 256 << 20

// feedRecord is one element of a country array; unknown fields (recovered, ...) are ignored.
type feedRecord struct {
	Date      string `json:"date"`
	Confirmed *int64 `json:"confirmed"`
	Deaths    *int64 `json:"deaths"`
}

// Client performs the single unauthenticated GET of the feed.
type Client struct {
	url     string
	httpc   *http.Client
	timeout time.Duration
	log     *logger.Logger
}

// NewClient returns a Client for url. Each Fetch is bounded by timeout.
func NewClient(url string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		url:     url,
		httpc:   &http.Client{},
		timeout: timeout,
		log:     log,
	}
}

// URL is the feed location.
func (c *Client) URL() string { return c.url }

// Fetch downloads and decodes the feed into a Dataset whose series are sorted by date.
func (c *Client) Fetch(ctx context.Context) (models.Dataset, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, c.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	ds, err := Decode(body)
	if err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debugw("feed_downloaded", "url", c.url, "bytes", len(body), "countries", len(ds), "took", time.Since(start))
	}
	return ds, nil
}

// Decode parses a feed document shaped as {country: [{date, confirmed, deaths, ...}]}.
// Records are sorted by date; a repeated date keeps the last occurrence.
func Decode(body []byte) (models.Dataset, error) {
	var raw map[string][]feedRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedFeed)
	}

	ds := make(models.Dataset, len(raw))
	for country, records := range raw {
		series, err := toSeries(records)
		if err != nil {
			return nil, fmt.Errorf("%w: country %q: %v", ErrMalformedFeed, country, err)
		}
		ds[country] = series
	}
	return ds, nil
}

func toSeries(records []feedRecord) (models.CountrySeries, error) {
	series := make(models.CountrySeries, 0, len(records))
	for i, r := range records {
		d, err := parseFeedDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if r.Confirmed == nil || r.Deaths == nil {
			return nil, fmt.Errorf("record %d (%s): missing confirmed or deaths", i, r.Date)
		}
		if *r.Confirmed < 0 || *r.Deaths < 0 {
			return nil, fmt.Errorf("record %d (%s): negative count", i, r.Date)
		}
		series = append(series, models.DailyRecord{Date: d, Confirmed: *r.Confirmed, Deaths: *r.Deaths})
	}

	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	// collapse duplicate dates, keeping the later entry
	out := series[:0]
	for _, rec := range series {
		if n := len(out); n > 0 && out[n-1].Date.Equal(rec.Date) {
			out[n-1] = rec
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseFeedDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
