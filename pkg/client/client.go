// Package client is a Go client for the askbot HTTP API.
package client

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
)

const (
	defaultTimeout = 15 * time.Second
	maxBodySize    = 1 << 20
)

// ErrUnexpectedStatus is wrapped by *APIError.
var ErrUnexpectedStatus = errors.New("askbot: unexpected status")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string // the server's "error" field, or the raw body when it is not JSON
}

func (e *APIError) Error() string {
	return fmt.Sprintf("askbot: %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return ErrUnexpectedStatus }

// Answer mirrors the /api/question payload.
type Answer struct {
	ResponseText    string  `json:"responseText"`
	Query           string  `json:"query"`
	Rating          float64 `json:"rating"`
	Action          string  `json:"action"`
	IsFallback      bool    `json:"isFallback"`
	SimilarQuestion string  `json:"similarQuestion"`
}

// Health mirrors the /health payload.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the timeout of the default HTTP client. Default: 15s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// Client calls an askbot server.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// New creates a client for the server at baseURL, e.g. http://localhost:3000.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("askbot: invalid base URL %q", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Ask sends one question.
func (c *Client) Ask(ctx context.Context, question string) (Answer, error) {
	var a Answer
	if err := c.get(ctx, "/api/question", url.Values{"q": {question}}, &a); err != nil {
		return Answer{}, err
	}
	return a, nil
}

// Welcome fetches a greeting.
func (c *Client) Welcome(ctx context.Context) (string, error) {
	var w struct {
		ResponseText string `json:"responseText"`
	}
	if err := c.get(ctx, "/api/welcome", nil, &w); err != nil {
		return "", err
	}
	return w.ResponseText, nil
}

// AllQuestions lists the questions the server knows.
func (c *Client) AllQuestions(ctx context.Context) ([]string, error) {
	var qs []string
	if err := c.get(ctx, "/api/allQuestions", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Suggest returns known questions matching a partial query. limit <= 0 lets the server decide.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{"q": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var qs []string
	if err := c.get(ctx, "/api/suggest", params, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Health fetches the server health. An unhealthy server answers 503, which is still decoded.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.get(ctx, "/health", nil, &h)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable && h.Status != "" {
		return h, nil
	}
	if err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("askbot: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("askbot: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("askbot: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		}
		// Health reports its payload together with 503.
		_ = json.Unmarshal(body, dst)
		return apiErr
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("askbot: decode %s: %w", path, err)
	}
	return nil
}
