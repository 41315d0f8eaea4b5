// Package hierarchy fetches the flat descendant set of a hierarchy root from
// the delivery API and reassembles it into a tree.
package hierarchy

import (
	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// DeliveryType selects how the hierarchy root is addressed.
type DeliveryType string

const (
	// DeliveryTypeID addresses the root by delivery id.
	DeliveryTypeID DeliveryType = "id"

	// DeliveryTypeKey addresses the root by delivery key.
	DeliveryTypeKey DeliveryType = "key"
)

// SortOrder is the server-side sort direction for descendant listings.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// Request describes a descendants listing. Zero values mean "not set": the
// corresponding query parameter is omitted and the server default applies.
type Request struct {
	// RootID is the delivery id or key of the hierarchy root.
	RootID string

	// DeliveryType says whether RootID is an id or a key. Defaults to id.
	DeliveryType DeliveryType

	// MaximumDepth limits how deep the server traverses below the root.
	MaximumDepth int

	// MaximumPageSize limits the number of items per page.
	MaximumPageSize int

	// PageCursor is the opaque continuation token from a prior page.
	PageCursor string

	// SortKey is a custom sortable field path to order siblings by.
	SortKey string

	// SortOrder is the direction applied to SortKey.
	SortOrder SortOrder
}

// ContentResponse is one flat record of a descendants page.
type ContentResponse struct {
	Content content.Body `json:"content"`
}

// Page is the pagination envelope of a descendants page. Older and newer
// deployments of the endpoint name the continuation token differently, so
// both spellings are accepted.
type Page struct {
	Cursor        string `json:"cursor,omitempty"`
	NextCursor    string `json:"nextCursor,omitempty"`
	ResponseCount int    `json:"responseCount"`
}

// ContinuationCursor returns the page's continuation token, or "" when the
// page is the last one.
func (p Page) ContinuationCursor() string {
	if p.Cursor != "" {
		return p.Cursor
	}
	return p.NextCursor
}

// PageResponse is a single page of a descendants listing as returned by the
// delivery API.
type PageResponse struct {
	Responses []ContentResponse `json:"responses"`
	Page      Page              `json:"page"`
}
