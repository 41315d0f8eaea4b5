package hierarchy

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// Getter is the slice of the HTTP transport the fetcher needs: issue a GET
// and decode the JSON response into out. Non-success statuses surface as
// *content.HTTPError.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

// Fetcher accumulates the complete flat descendant set of a hierarchy root,
// following pagination cursors until the listing is exhausted.
type Fetcher struct {
	client Getter
	log    hclog.Logger
}

// NewFetcher creates a Fetcher on top of the given transport.
func NewFetcher(client Getter, log hclog.Logger) *Fetcher {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Fetcher{client: client, log: log}
}

// GetByHierarchy returns every descendant record of the request's root.
// Pages are fetched sequentially: each page's cursor depends on the prior
// response, and serial requests keep the upstream rate limiter happy. Any
// page failure aborts the whole fetch; no partial set is ever returned.
func (f *Fetcher) GetByHierarchy(ctx context.Context, req Request) ([]ContentResponse, error) {
	var all []ContentResponse
	for {
		var page PageResponse
		path := BuildURL(req)
		f.log.Debug("fetching hierarchy descendants page", "path", path)
		if err := f.client.Get(ctx, path, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Responses...)

		cursor := page.Page.ContinuationCursor()
		if cursor == "" {
			return all, nil
		}
		req.PageCursor = cursor
	}
}
