// Package transport is the HTTP client the delivery SDK talks through. It
// handles base host resolution, request headers, JSON decoding, typed error
// mapping and transparent retry of rate-limited requests.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// DefaultRetries is the number of retry attempts applied to rate-limited
// requests when retries are enabled without an explicit count.
const DefaultRetries = 3

// RetryConfig controls transparent retry of HTTP 429 responses.
type RetryConfig struct {
	// Retries is the maximum number of retry attempts. Zero means
	// DefaultRetries.
	Retries uint64

	// InitialInterval seeds the exponential backoff. Zero means the backoff
	// library default.
	InitialInterval time.Duration
}

// Config describes a transport client.
type Config struct {
	// BaseURL is the scheme and host every request path is resolved against.
	BaseURL string

	// Timeout bounds each individual request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient, when set, is used instead of a freshly constructed client.
	// It must be safe for concurrent use. This is the interception point for
	// tests and custom adapters.
	HTTPClient *http.Client

	// Headers are added to every request.
	Headers map[string]string

	// Retry enables 429 retry with exponential backoff when non-nil.
	Retry *RetryConfig

	// Logger receives debug-level request logs. Nil means no logging.
	Logger hclog.Logger
}

// Client issues JSON requests against the delivery API. It is safe for
// concurrent use; the only state is read-only configuration and the
// underlying *http.Client.
type Client struct {
	base    string
	hc      *http.Client
	headers map[string]string
	retry   *RetryConfig
	log     hclog.Logger
}

// New creates a Client from the config.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Client{
		base:    strings.TrimSuffix(cfg.BaseURL, "/"),
		hc:      hc,
		headers: cfg.Headers,
		retry:   cfg.Retry,
		log:     log,
	}
}

// Get issues a GET for the path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON-encoded body and decodes the response into
// out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
	}

	attempt := func() error {
		return c.roundTrip(ctx, method, path, payload, out)
	}
	if c.retry == nil {
		err := attempt()
		if perm, ok := err.(*backoff.PermanentError); ok {
			return perm.Unwrap()
		}
		return err
	}

	retries := c.retry.Retries
	if retries == 0 {
		retries = DefaultRetries
	}
	policy := backoff.NewExponentialBackOff()
	if c.retry.InitialInterval > 0 {
		policy.InitialInterval = c.retry.InitialInterval
	}
	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx))
}

// roundTrip executes a single request. Only HTTP 429 responses come back as
// retryable errors; transport failures and other statuses are permanent so
// they surface to the caller unchanged.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any) error {
	url := c.base + "/" + strings.TrimPrefix(path, "/")

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.log.Debug("delivery request", "method", method, "url", url)
	resp, err := c.hc.Do(req)
	if err != nil {
		return backoff.Permanent(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &content.HTTPError{StatusCode: resp.StatusCode, Body: respBody}
		if resp.StatusCode == http.StatusTooManyRequests {
			c.log.Debug("rate limited, will retry if attempts remain", "url", url)
			return httpErr
		}
		return backoff.Permanent(httpErr)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}
