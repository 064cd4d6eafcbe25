// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ClientConfig configures a rate-limited HTTP client.
type ClientConfig struct {
	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration

	// RateLimit is the sustained request rate in requests per second
	// (default 3, the NCBI limit without an API key).
	RateLimit float64

	// Burst is the maximum burst of requests allowed (default 3).
	Burst int

	// MaxRetries is the maximum number of 429 retry attempts.
	MaxRetries int

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string
}

// Client wraps http.Client with token-bucket rate limiting and 429 retry.
// The underlying rate.Limiter is goroutine-safe, so Client is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        ClientConfig
}

// NewClient creates a rate-limited HTTP client. The limiter is applied
// before every request; 429 responses are retried with exponential backoff
// via DoWithRetry.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 3
	}
	if cfg.Burst == 0 {
		cfg.Burst = 3
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		cfg:        cfg,
	}
}

// Do waits for the rate limiter, sets the User-Agent header, and executes
// the request with 429 retry. It returns ctx.Err() if the context is
// cancelled while waiting for a token.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	return DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
}

// SetRate updates the sustained request rate, preserving the burst size.
// Used when an NCBI API key raises the allowed rate.
func (c *Client) SetRate(perSecond float64) {
	c.limiter.SetLimit(rate.Limit(perSecond))
	c.cfg.RateLimit = perSecond
}
