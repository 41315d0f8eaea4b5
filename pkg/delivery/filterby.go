package delivery

import (
	"context"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

const filterPath = "/content/filter"

// Well-known filterable paths.
const (
	SchemaPath   = "/_meta/schema"
	ParentIDPath = "/_meta/hierarchy/parentId"
)

// SortOrder is the direction applied to a filter sort key.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// FilterCriterion matches content whose value at a registered path equals
// the given value.
type FilterCriterion struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// SortBy orders filter results by a registered sort key.
type SortBy struct {
	Key   string    `json:"key"`
	Order SortOrder `json:"order"`
}

// FilterPageRequest selects a page size and/or continuation cursor.
type FilterPageRequest struct {
	Size   int    `json:"size,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// FilterRequest is the body of a POST /content/filter call.
type FilterRequest struct {
	FilterBy   []FilterCriterion  `json:"filterBy"`
	SortBy     *SortBy            `json:"sortBy,omitempty"`
	Page       *FilterPageRequest `json:"page,omitempty"`
	Parameters *FetchParameters   `json:"parameters,omitempty"`
}

// FilterPageInfo is the pagination envelope of a filter response.
type FilterPageInfo struct {
	ResponseCount int    `json:"responseCount"`
	NextCursor    string `json:"nextCursor,omitempty"`
}

// FilterResponse is one page of filter results. When the listing continues,
// Next fetches the following page.
type FilterResponse struct {
	Responses []ItemResponse `json:"responses"`
	Page      FilterPageInfo `json:"page"`

	next func(ctx context.Context) (*FilterResponse, error)
}

// HasNext reports whether a further page is available.
func (r *FilterResponse) HasNext() bool {
	return r.next != nil
}

// Next fetches the next page of the listing. Calling it on the last page
// returns nil.
func (r *FilterResponse) Next(ctx context.Context) (*FilterResponse, error) {
	if r.next == nil {
		return nil, nil
	}
	return r.next(ctx)
}

// FilterBy is a builder for filter requests:
//
//	client.FilterByContentType(schemaURI).SortBy("default", delivery.SortAscending).Request(ctx)
type FilterBy struct {
	client  *Client
	request FilterRequest
}

// FilterBy starts a filter request matching content whose value at the
// given registered path equals value.
func (c *Client) FilterBy(path string, value any) *FilterBy {
	f := &FilterBy{client: c}
	return f.FilterBy(path, value)
}

// FilterByContentType starts a filter request matching a content type URI.
// Equivalent to FilterBy("/_meta/schema", uri).
func (c *Client) FilterByContentType(uri string) *FilterBy {
	return c.FilterBy(SchemaPath, uri)
}

// FilterByParentID starts a filter request matching the direct children of
// a hierarchy item. Equivalent to FilterBy("/_meta/hierarchy/parentId", id).
func (c *Client) FilterByParentID(id string) *FilterBy {
	return c.FilterBy(ParentIDPath, id)
}

// FilterBy adds a further criterion; all criteria must match.
func (f *FilterBy) FilterBy(path string, value any) *FilterBy {
	f.request.FilterBy = append(f.request.FilterBy, FilterCriterion{Path: path, Value: value})
	return f
}

// SortBy orders the results by a registered sort key.
func (f *FilterBy) SortBy(key string, order SortOrder) *FilterBy {
	f.request.SortBy = &SortBy{Key: key, Order: order}
	return f
}

// PageSize limits the number of results per page (server maximum 12).
func (f *FilterBy) PageSize(size int) *FilterBy {
	if f.request.Page == nil {
		f.request.Page = &FilterPageRequest{}
	}
	f.request.Page.Size = size
	return f
}

// PageCursor resumes the listing from a continuation cursor.
func (f *FilterBy) PageCursor(cursor string) *FilterBy {
	if f.request.Page == nil {
		f.request.Page = &FilterPageRequest{}
	}
	f.request.Page.Cursor = cursor
	return f
}

// Request executes the filter. The response exposes cursor continuation
// through Next.
func (f *FilterBy) Request(ctx context.Context) (*FilterResponse, error) {
	if !f.client.config.isV2() {
		return nil, &content.NotSupportedError{Property: "HubName", Method: "FilterBy"}
	}
	return f.client.filterContent(ctx, f.request)
}

func (c *Client) filterContent(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	if req.Parameters == nil && c.config.Locale != "" {
		req.Parameters = &FetchParameters{Locale: c.config.Locale}
	} else if req.Parameters != nil && req.Parameters.Locale == "" && c.config.Locale != "" {
		params := *req.Parameters
		params.Locale = c.config.Locale
		req.Parameters = &params
	}

	var resp FilterResponse
	if err := c.transport.Post(ctx, filterPath, req, &resp); err != nil {
		return nil, err
	}

	if resp.Page.NextCursor != "" {
		nextReq := req
		page := FilterPageRequest{Cursor: resp.Page.NextCursor}
		if req.Page != nil {
			page.Size = req.Page.Size
		}
		nextReq.Page = &page
		resp.next = func(ctx context.Context) (*FilterResponse, error) {
			return c.filterContent(ctx, nextReq)
		}
	}
	return &resp, nil
}
