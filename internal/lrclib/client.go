// Package lrclib provides a client for the lrclib.net lyrics API.
package lrclib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when no lyrics are found.
var ErrNotFound = errors.New("lyrics not found")

const (
	// DefaultBaseURL is the public lrclib.net API.
	DefaultBaseURL = "https://lrclib.net/api"
	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	userAgent = "lrctoolbox (https://github.com/llehouerou/lrctoolbox)"
)

// Client is an lrclib.net API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a new lrclib client. Empty baseURL and zero timeout use the defaults.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Query identifies a track to look up.
type Query struct {
	Artist   string
	Title    string
	Album    string
	Duration time.Duration
}

// LyricsResult represents the response from the lrclib API.
type LyricsResult struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// Get fetches lyrics by artist, title, and optionally album and duration.
// The duration is sent rounded to whole seconds.
func (c *Client) Get(ctx context.Context, q Query) (*LyricsResult, error) {
	params := url.Values{}
	params.Set("artist_name", q.Artist)
	params.Set("track_name", q.Title)
	if q.Album != "" {
		params.Set("album_name", q.Album)
	}
	if q.Duration > 0 {
		params.Set("duration", fmt.Sprintf("%.0f", q.Duration.Seconds()))
	}

	var result LyricsResult
	if err := c.getJSON(ctx, "get", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search searches for lyrics matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]LyricsResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var results []LyricsResult
	if err := c.getJSON(ctx, "search", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// getJSON performs a GET on endpoint and decodes the JSON body into out.
// A 404 maps to ErrNotFound.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// HasSyncedLyrics returns true if the result contains synced (LRC) lyrics.
func (r *LyricsResult) HasSyncedLyrics() bool {
	return r.SyncedLyrics != ""
}

// HasPlainLyrics returns true if the result contains plain text lyrics.
func (r *LyricsResult) HasPlainLyrics() bool {
	return r.PlainLyrics != ""
}

// Length returns the track duration as m:ss, or "" when unknown.
func (r *LyricsResult) Length() string {
	if r.Duration <= 0 {
		return ""
	}
	total := int(r.Duration + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
