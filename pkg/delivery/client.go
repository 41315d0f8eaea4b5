package delivery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/amplience/dc-delivery-sdk-go/internal/transport"
	"github.com/amplience/dc-delivery-sdk-go/pkg/content/mapper"
	"github.com/amplience/dc-delivery-sdk-go/pkg/media"
)

// Client fetches content from the delivery APIs. It is safe for concurrent
// use: all state is read-only configuration plus the underlying HTTP
// client. Independent requests share nothing else.
type Client struct {
	config    Config
	log       hclog.Logger
	transport *transport.Client
	mapper    *mapper.Mapper
}

// New creates a Client. The config is validated before anything else
// happens.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid delivery config: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	headers := map[string]string{}
	if cfg.StagingEnvironment != "" && cfg.PreviewKey != "" {
		headers["X-API-Key"] = cfg.PreviewKey
	}

	var retry *transport.RetryConfig
	if cfg.isFresh() {
		headers["X-API-Key"] = cfg.APIKey
		retry = &transport.RetryConfig{}
		if cfg.Retry != nil {
			retry.Retries = cfg.Retry.Retries
			retry.InitialInterval = cfg.Retry.InitialInterval
		}
	}

	t := transport.New(transport.Config{
		BaseURL:    cfg.host(),
		Timeout:    cfg.Timeout,
		HTTPClient: cfg.HTTPClient,
		Headers:    headers,
		Retry:      retry,
		Logger:     log,
	})

	m := mapper.New(media.Config{
		StagingEnvironment: cfg.StagingEnvironment,
		MediaHost:          cfg.MediaHost,
		SecureMediaHost:    cfg.SecureMediaHost,
	}, log)

	return &Client{config: cfg, log: log, transport: t, mapper: m}, nil
}

// Mapper exposes the client's fragment mapper so callers can register
// custom schema converters before fetching content.
func (c *Client) Mapper() *mapper.Mapper {
	return c.mapper
}

// encodeQueryPairs builds a query string preserving parameter order, which
// url.Values cannot do.
func encodeQueryPairs(pairs [][2]string) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(p[0])
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String()
}
