package delivery

import (
	"context"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

const fetchPath = "/content/fetch"

// FetchParameters are the request options applied to a multi-item fetch.
type FetchParameters struct {
	Depth  string `json:"depth,omitempty"`
	Format string `json:"format,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// FetchRequest is the body of a POST /content/fetch call: a list of id or
// key references plus shared parameters.
type FetchRequest struct {
	Requests   []map[string]string `json:"requests"`
	Parameters *FetchParameters    `json:"parameters,omitempty"`
}

// ItemResponse is one record of a multi-item or filter response.
type ItemResponse struct {
	Content       content.Body   `json:"content"`
	LinkedContent []content.Body `json:"linkedContent,omitempty"`
}

// FetchResponse is the result of a multi-item fetch. Items that could not
// be resolved are simply absent from Responses.
type FetchResponse struct {
	Responses []ItemResponse `json:"responses"`
}

// ContentItemsByID fetches several content items by delivery id in one
// request.
func (c *Client) ContentItemsByID(ctx context.Context, ids ...string) (*FetchResponse, error) {
	return c.fetchBy(ctx, "id", ids, "ContentItemsByID")
}

// ContentItemsByKey fetches several content items by delivery key in one
// request.
func (c *Client) ContentItemsByKey(ctx context.Context, keys ...string) (*FetchResponse, error) {
	return c.fetchBy(ctx, "key", keys, "ContentItemsByKey")
}

func (c *Client) fetchBy(ctx context.Context, property string, values []string, method string) (*FetchResponse, error) {
	requests := make([]map[string]string, 0, len(values))
	for _, v := range values {
		requests = append(requests, map[string]string{property: v})
	}
	return c.fetchContentItems(ctx, FetchRequest{Requests: requests}, method)
}

// FetchContentItems issues a raw multi-item fetch, for callers mixing id
// and key references or overriding the request parameters.
func (c *Client) FetchContentItems(ctx context.Context, req FetchRequest) (*FetchResponse, error) {
	return c.fetchContentItems(ctx, req, "FetchContentItems")
}

func (c *Client) fetchContentItems(ctx context.Context, req FetchRequest, method string) (*FetchResponse, error) {
	if !c.config.isV2() {
		return nil, &content.NotSupportedError{Property: "HubName", Method: method}
	}

	params := FetchParameters{Depth: "all", Format: "inlined", Locale: c.config.Locale}
	if req.Parameters != nil {
		if req.Parameters.Depth != "" {
			params.Depth = req.Parameters.Depth
		}
		if req.Parameters.Format != "" {
			params.Format = req.Parameters.Format
		}
		if req.Parameters.Locale != "" {
			params.Locale = req.Parameters.Locale
		}
	}
	req.Parameters = &params

	var resp FetchResponse
	if err := c.transport.Post(ctx, fetchPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
