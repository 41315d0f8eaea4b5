package delivery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amplience/dc-delivery-sdk-go/internal/legacy"
	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// getContentItemV1 fetches a content item from the legacy query API, which
// answers with a JSON-LD graph that is normalized into a single denormalized
// document before mapping.
func (c *Client) getContentItemV1(ctx context.Context, id string) (*Item, error) {
	query, err := json.Marshal(map[string]string{
		"sys.iri": legacy.ContentIRIPrefix + id,
	})
	if err != nil {
		return nil, err
	}

	pairs := [][2]string{
		{"query", string(query)},
		{"fullBodyObject", "true"},
		{"scope", "tree"},
		{"store", c.config.Account},
	}
	if c.config.Locale != "" {
		pairs = append(pairs, [2]string{"locale", c.config.Locale})
	}
	path := fmt.Sprintf("/cms/content/query?%s", encodeQueryPairs(pairs))

	var data map[string]any
	if err := c.transport.Get(ctx, path, &data); err != nil {
		return nil, err
	}

	items, nerr := legacy.ProcessResponse(data)
	if nerr != nil {
		c.log.Debug("legacy response contained unresolvable references", "error", nerr)
	}
	if len(items) == 0 {
		return nil, &content.NotFoundError{ContentItem: id}
	}

	for _, item := range items {
		if item.DeliveryID() == id {
			return &Item{Body: c.mapper.ToMappedContent(item)}, nil
		}
	}
	return nil, &content.NotFoundError{ContentItem: id}
}
