// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shreyasr1/pharma-papers/internal/httputil"
	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

const (
	// DefaultBaseURL is the base URL for the NCBI E-utilities API.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultRateLimit is the request rate NCBI allows without an API key.
	// With a key the limit rises to 10 requests/second.
	DefaultRateLimit = 3.0

	defaultTool       = "pharma-papers"
	defaultEmail      = "user@example.com"
	defaultMaxResults = 100
	defaultBatchSize  = 50
	defaultBatchDelay = 500 * time.Millisecond

	sourceName = "PubMed"
)

// Client talks to the NCBI E-utilities API. All requests go through a shared
// rate-limited HTTP client, so Client is safe for concurrent use.
type Client struct {
	cfg  types.PubMedConfig
	http *httputil.Client
	log  zerolog.Logger
}

// New creates a PubMed client. Zero-value config fields get NCBI-appropriate
// defaults; an API key raises the request rate from 3 to 10 per second.
func New(cfg types.PubMedConfig, log zerolog.Logger) *Client {
	applyDefaults(&cfg)

	rateLimit := DefaultRateLimit
	if cfg.APIKey != "" {
		rateLimit = 10
	}

	hc := httputil.NewClient(httputil.ClientConfig{
		Timeout:   cfg.Timeout,
		RateLimit: rateLimit,
		Burst:     int(rateLimit),
		UserAgent: cfg.UserAgent,
	})
	return NewWithHTTPClient(cfg, hc, log)
}

// NewWithHTTPClient creates a PubMed client with a custom HTTP client.
// Tests use this to point at an httptest server without rate limiting.
func NewWithHTTPClient(cfg types.PubMedConfig, hc *httputil.Client, log zerolog.Logger) *Client {
	applyDefaults(&cfg)
	return &Client{cfg: cfg, http: hc, log: log}
}

func applyDefaults(cfg *types.PubMedConfig) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Tool == "" {
		cfg.Tool = defaultTool
	}
	if cfg.Email == "" {
		cfg.Email = defaultEmail
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.BatchDelay == 0 {
		cfg.BatchDelay = defaultBatchDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultTool + "/0.1"
	}
}

// esearchResponse captures the fields we need from an esearch JSON reply.
type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search queries esearch.fcgi and returns the PMIDs matching the query, up
// to maxResults. When maxResults is non-positive the configured default is
// used. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}

	c.log.Debug().Str("query", query).Int("max_results", maxResults).Msg("searching PubMed")

	q := c.baseParams()
	q.Set("term", query)
	q.Set("retmax", strconv.Itoa(maxResults))
	q.Set("retmode", "json")

	body, err := c.get(ctx, "/esearch.fcgi", q)
	if err != nil {
		return nil, err
	}

	var result esearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, types.NewExternalAPIError(sourceName, 0, "parsing esearch response", err)
	}

	pmids := result.ESearchResult.IDList
	c.log.Debug().Int("count", len(pmids)).Msg("search returned PMIDs")
	return pmids, nil
}

// FetchDetails retrieves the raw efetch XML documents for the given PMIDs,
// one document per batch of BatchSize ids, pausing BatchDelay between
// consecutive batches. Batch boundaries carry no meaning downstream; the
// extractor is invoked once per returned document.
func (c *Client) FetchDetails(ctx context.Context, pmids []string) ([][]byte, error) {
	if len(pmids) == 0 {
		c.log.Debug().Msg("no PMIDs to fetch")
		return nil, nil
	}

	c.log.Debug().Int("count", len(pmids)).Msg("fetching article details")

	var docs [][]byte
	for start := 0; start < len(pmids); start += c.cfg.BatchSize {
		if start > 0 && c.cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.BatchDelay):
			}
		}

		end := start + c.cfg.BatchSize
		if end > len(pmids) {
			end = len(pmids)
		}

		q := c.baseParams()
		q.Set("id", strings.Join(pmids[start:end], ","))
		q.Set("retmode", "xml")

		body, err := c.get(ctx, "/efetch.fcgi", q)
		if err != nil {
			return nil, err
		}
		docs = append(docs, body)
	}
	return docs, nil
}

// baseParams returns the query parameters every E-utilities request carries.
func (c *Client) baseParams() url.Values {
	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("tool", c.cfg.Tool)
	q.Set("email", c.cfg.Email)
	if c.cfg.APIKey != "" {
		q.Set("api_key", c.cfg.APIKey)
	}
	return q
}

// get executes one E-utilities GET and returns the response body. Transport
// and non-200 failures surface as *types.ExternalAPIError.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.cfg.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, types.NewExternalAPIError(sourceName, 0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, types.NewExternalAPIError(sourceName, resp.StatusCode, "reading response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewExternalAPIError(sourceName, resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}
	return body, nil
}
