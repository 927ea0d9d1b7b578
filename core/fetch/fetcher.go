// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET per page image; there is no retry
// logic, a failed page fails the fetch. Writing bytes to disk is the
// store's job so this package stays independently testable.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/basilelt/reader2pdf/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "reader2pdf/1.0 (https://github.com/basilelt/reader2pdf)"
)

// Client fetches page images via HTTP. The zero rate limit means
// requests are not throttled.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client with a sensible timeout and no rate limit.
func New() *Client {
	return NewWithClient(&http.Client{Timeout: defaultTimeout}, 0)
}

// NewWithClient creates a Client around an explicit http.Client so
// connection reuse and timeouts are owned by the caller, optionally
// throttled to requestsPerSecond. A nil client gets the default.
func NewWithClient(hc *http.Client, requestsPerSecond float64) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	c := &Client{http: hc}
	if requestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return c
}

// Fetch retrieves the image bytes at url. Any transport failure or
// non-success status is reported as a *core.FetchError carrying the URL.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &core.FetchError{URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &core.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.FetchError{URL: url, Err: err}
	}
	return body, nil
}
