package owapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds fetcher settings, overridable from the environment.
type Config struct {
	BaseURL string        `env:"OW_API_BASE_URL" envDefault:"https://ow-api.com/v1"`
	Timeout time.Duration `env:"OW_API_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads fetcher settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse owapi config: %w", err)
	}
	return cfg, nil
}

// APIError reports a non-200 status from the stats API.
type APIError struct {
	StatusCode int
}

// Canned messages matching the API's documented error codes.
var apiErrorMessages = map[int]string{
	400: "Your request sucks.",
	404: "The specified profile could not be found.",
	406: "You requested a format that isn't json.",
	500: "We had a problem with our server. Try again later.",
	503: "We're temporarily offline for maintenance. Try again later.",
}

func (e *APIError) Error() string {
	if msg, ok := apiErrorMessages[e.StatusCode]; ok {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client issues stat lookups against the API. One request per fetch; no
// retries, backoff or rate limiting.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient builds a client from explicit config.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = "https://ow-api.com/v1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{baseURL: base, hc: &http.Client{Timeout: timeout}}
}

// NewClientFromEnv builds a client from environment config.
func NewClientFromEnv() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg), nil
}

// FetchStats performs a single GET for a player's complete stat document.
// The tag uses the dashed battletag form (e.g. Clovis-1467).
func (c *Client) FetchStats(ctx context.Context, platform, region, tag string) (*StatsPayload, error) {
	u := fmt.Sprintf("%s/stats/%s/%s/%s/complete",
		c.baseURL, url.PathEscape(platform), url.PathEscape(region), url.PathEscape(tag))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stats for %s: %w", tag, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	var payload StatsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode stats for %s: %w", tag, err)
	}
	return &payload, nil
}
