// Package webhook provides an HTTP client for posting scan reports to endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/logtally/logtally/pkg/output"
)

// DefaultTimeout is the request timeout used when none is configured.
const DefaultTimeout = 10 * time.Second

// Client posts scan reports to a single webhook endpoint.
type Client struct {
	url     string
	token   string
	timeout time.Duration

	httpClient *http.Client
}

// NewClient creates a webhook client for the given endpoint. The token is
// optional; a non-positive timeout falls back to DefaultTimeout.
func NewClient(url, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		token:      token,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Delivery contains the result of one webhook request.
type Delivery struct {
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Success returns true if the endpoint accepted the report (2xx status).
func (d *Delivery) Success() bool {
	return d.Err == nil && d.StatusCode >= 200 && d.StatusCode < 300
}

// Send posts the JSON-encoded report to the endpoint. Failures are
// recorded on the returned Delivery, never returned as an error.
func (c *Client) Send(ctx context.Context, report *output.Report) *Delivery {
	start := time.Now()
	d := &Delivery{}
	defer func() { d.Duration = time.Since(start) }()

	payload, err := json.Marshal(report)
	if err != nil {
		d.Err = fmt.Errorf("encoding report: %w", err)
		return d
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		d.Err = fmt.Errorf("creating request: %w", err)
		return d
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "logtally-webhook")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		d.Err = fmt.Errorf("request failed: %w", err)
		return d
	}
	defer resp.Body.Close()

	// Drain at most 1MB of response body
	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 1024*1024)); err != nil {
		d.Err = fmt.Errorf("reading response: %w", err)
		return d
	}

	d.StatusCode = resp.StatusCode
	if d.StatusCode >= 400 {
		d.Err = fmt.Errorf("webhook returned status %d", d.StatusCode)
	}

	return d
}
