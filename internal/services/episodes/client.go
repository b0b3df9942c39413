package episodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "http://localhost:3333"
	defaultUserAgent = "Podcastr/1.0"
)

// Client talks to the json-server style episodes API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// ClientConfig holds configuration for the episodes API client
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	RateLimit int // requests per second, 0 = unlimited
	Burst     int
}

// NewClient creates a new episodes API client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		limiter:    limiter,
	}
}

// ListLatest returns the most recently published episodes
func (c *Client) ListLatest(ctx context.Context, limit int) ([]APIEpisode, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	params := url.Values{}
	params.Set("_limit", strconv.Itoa(limit))
	params.Set("_sort", "published_at")
	params.Set("_order", "desc")

	var list []APIEpisode
	if err := c.get(ctx, "episodes", params, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetBySlug returns a single episode by its id
func (c *Client) GetBySlug(ctx context.Context, slug string) (*APIEpisode, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, NewValidationError("slug", "cannot be empty")
	}

	var episode APIEpisode
	err := c.get(ctx, "episodes/"+url.PathEscape(slug), nil, &episode)
	if err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, NewNotFoundError("episode", slug)
		}
		return nil, err
	}

	// json-server answers some misses with 200 and an empty object
	if episode.ID == nil {
		return nil, NewNotFoundError("episode", slug)
	}

	return &episode, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":      fullURL,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("episodes API request")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return NewAPIError(endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
