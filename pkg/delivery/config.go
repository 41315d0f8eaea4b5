// Package delivery is the public facade of the content delivery SDK. A
// Client fetches content items and hierarchies from the delivery APIs,
// normalizing the legacy and current API generations into one document
// model.
package delivery

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// RetryConfig controls transparent retry of rate-limited (HTTP 429)
// requests on the Fresh API.
type RetryConfig struct {
	// Retries is the maximum number of retry attempts. Zero means the
	// default of 3.
	Retries uint64

	// InitialInterval seeds the exponential backoff between attempts.
	InitialInterval time.Duration
}

// Config describes a delivery client. Exactly one API generation is
// selected: Account addresses the legacy (V1) API, HubName the current (V2)
// API, and HubName plus APIKey the Fresh API.
type Config struct {
	// Account is the legacy API account name. Setting it configures the
	// client for the V1 API.
	Account string

	// HubName is the hub to fetch content from. Setting it configures the
	// client for the V2 API.
	HubName string

	// APIKey switches a V2 client to the Fresh API, authenticated with this
	// key and retried on rate limiting.
	APIKey string

	// Retry overrides the Fresh API retry behavior.
	Retry *RetryConfig

	// Locale, when set, is requested on every content read.
	Locale string

	// BaseURL overrides the default API host.
	BaseURL string

	// StagingEnvironment routes all requests to a virtual staging host so
	// unpublished content can be previewed.
	StagingEnvironment string

	// PreviewKey authenticates staging requests.
	PreviewKey string

	// MediaHost is a branded hostname for plain HTTP media URLs.
	MediaHost string

	// SecureMediaHost is a branded hostname for HTTPS media URLs.
	SecureMediaHost string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient, when set, replaces the client the SDK would construct.
	// This is the interception point for tests and custom adapters.
	HTTPClient *http.Client

	// Logger receives debug-level logs. Nil disables logging.
	Logger hclog.Logger
}

// Validate checks that the config selects an API generation and that any
// host overrides are well formed.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.HubName,
			validation.When(c.Account == "", validation.Required.Error("either Account or HubName must be set")),
		),
		validation.Field(&c.APIKey,
			validation.When(c.HubName == "", validation.Empty.Error("APIKey requires HubName")),
		),
		validation.Field(&c.BaseURL, validation.By(validHTTPURL)),
	)
}

func validHTTPURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https, got %q", u.Scheme)
	}
	return nil
}

func (c Config) isV2() bool {
	return c.HubName != ""
}

func (c Config) isFresh() bool {
	return c.isV2() && c.APIKey != ""
}

// host resolves the base host for API requests: the staging environment
// wins, then an explicit BaseURL, then the default host of the configured
// API generation.
func (c Config) host() string {
	if c.StagingEnvironment != "" {
		return "https://" + c.StagingEnvironment
	}
	if c.BaseURL != "" {
		return c.BaseURL
	}
	switch {
	case c.isFresh():
		return fmt.Sprintf("https://%s.fresh.content.amplience.net", c.HubName)
	case c.isV2():
		return fmt.Sprintf("https://%s.cdn.content.amplience.net", c.HubName)
	default:
		return "https://cdn.c1.amplience.net"
	}
}
