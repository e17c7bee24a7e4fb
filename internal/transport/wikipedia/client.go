// Package wikipedia fetches article summaries from the Wikipedia REST API.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/metrics"
)

const (
	summaryPath = "/api/rest_v1/page/summary/"

	// maxBodySize caps the decoded response; summaries are a few KB.
	maxBodySize = 1 << 20
)

// Config holds the lookup client settings.
type Config struct {
	BaseURL   string // e.g. https://en.wikipedia.org
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// Client looks up page summaries.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    *zap.Logger
}

// summaryResponse is the subset of the page/summary payload the bot uses.
type summaryResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// NewClient creates a summary lookup client. The timeout bounds every lookup.
func NewClient(cfg *Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Summary returns the plain-text extract of the article titled title.
// A missing article is domain.ErrArticleNotFound; any other failure wraps domain.ErrLookup.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	start := time.Now()
	summary, status, err := c.fetch(ctx, title)
	metrics.LookupRequestDuration.Observe(time.Since(start).Seconds())
	metrics.LookupRequestsTotal.WithLabelValues(status).Inc()
	return summary, err
}

func (c *Client) fetch(ctx context.Context, title string) (string, string, error) {
	endpoint := c.baseURL + summaryPath + pageKey(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", "error", fmt.Errorf("build request: %w: %w", err, domain.ErrLookup)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "error", fmt.Errorf("summary request failed: %w: %w", err, domain.ErrLookup)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", "not_found", fmt.Errorf("article %q: %w", title, domain.ErrArticleNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("Summary lookup rejected",
			zap.String("title", title),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", "error", fmt.Errorf("summary API status %d: %w", resp.StatusCode, domain.ErrLookup)
	}

	var parsed summaryResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&parsed); err != nil {
		return "", "error", fmt.Errorf("decode summary: %w: %w", err, domain.ErrLookup)
	}
	if strings.TrimSpace(parsed.Extract) == "" {
		return "", "not_found", fmt.Errorf("article %q has no extract: %w", title, domain.ErrArticleNotFound)
	}
	return parsed.Extract, "success", nil
}

// pageKey turns a display title into the path segment the REST API expects.
func pageKey(title string) string {
	return url.PathEscape(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
}
