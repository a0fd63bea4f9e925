// Package feed retrieves fight schedules and pre-computed EV
// opportunities from the scraper backend, falling back to a built-in
// sample dataset whenever the feed is unreachable or malformed.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/rohan411hegde/mma-ev-tool/internal/metrics"
	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

const (
	fightsPath        = "/api/fights"
	opportunitiesPath = "/api/ev-opportunities"

	fightsCacheKey        = "fights"
	opportunitiesCacheKey = "opportunities"
)

// Client fetches feed data over HTTP with TTL caching
type Client struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	cache      *cache.Cache
	logger     *logrus.Logger
}

// NewClient creates a feed client. Responses are cached for ttl so
// repeated reads within the window do not re-hit the scraper.
func NewClient(httpClient *RateLimitedHTTPClient, baseURL string, ttl time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cache:      cache.New(ttl, ttl*2),
		logger:     logger,
	}
}

// Fights returns the upcoming fight schedule with per-book odds.
// Never returns an error: any feed failure falls back to sample data.
func (c *Client) Fights(ctx context.Context) []models.Fight {
	if cached, found := c.cache.Get(fightsCacheKey); found {
		return cached.([]models.Fight)
	}

	metrics.FeedRequestsTotal.WithLabelValues("fights").Inc()

	var resp models.FightsResponse
	if err := c.fetch(ctx, fightsPath, &resp); err != nil || !resp.Success {
		c.fallback("fights", err, resp.Success)
		return SampleFights()
	}

	c.cache.SetDefault(fightsCacheKey, resp.Fights)
	return resp.Fights
}

// Opportunities returns the current EV opportunities, strongest edge
// first as the feed orders them. Falls back to sample data on failure.
func (c *Client) Opportunities(ctx context.Context) []models.EVOpportunity {
	if cached, found := c.cache.Get(opportunitiesCacheKey); found {
		return cached.([]models.EVOpportunity)
	}

	metrics.FeedRequestsTotal.WithLabelValues("opportunities").Inc()

	var resp models.OpportunitiesResponse
	if err := c.fetch(ctx, opportunitiesPath, &resp); err != nil || !resp.Success {
		c.fallback("opportunities", err, resp.Success)
		return SampleOpportunities()
	}

	c.cache.SetDefault(opportunitiesCacheKey, resp.Opportunities)
	return resp.Opportunities
}

// Refresh drops cached responses and re-fetches both endpoints
func (c *Client) Refresh(ctx context.Context) {
	c.cache.Delete(fightsCacheKey)
	c.cache.Delete(opportunitiesCacheKey)
	c.Fights(ctx)
	c.Opportunities(ctx)
}

// UpdateFights replaces the cached fight schedule, used by the live
// odds stream.
func (c *Client) UpdateFights(fights []models.Fight) {
	c.cache.SetDefault(fightsCacheKey, fights)
}

func (c *Client) fetch(ctx context.Context, path string, out interface{}) error {
	resp, err := c.httpClient.Get(ctx, c.baseURL+path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read feed response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse feed response: %w", err)
	}

	return nil
}

func (c *Client) fallback(endpoint string, err error, success bool) {
	metrics.RecordFeedFallback()
	entry := c.logger.WithField("endpoint", endpoint)
	if err != nil {
		entry = entry.WithError(err)
	} else if !success {
		entry = entry.WithField("feed_success", false)
	}
	entry.Warn("Feed unavailable, serving sample data")
}
