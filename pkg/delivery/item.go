package delivery

import (
	"encoding/json"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
	"github.com/amplience/dc-delivery-sdk-go/pkg/content/query"
)

// Item is a single fetched content item. Its body has been through the
// fragment mapper, so known fragment kinds carry their hydrated values.
type Item struct {
	Body content.Body
}

// Select returns every value in the item's body matching the JSONPath
// expression.
func (i *Item) Select(path string) ([]any, error) {
	return query.Select(i.Body, path)
}

// ToJSON serializes the item's body back to plain JSON, flattening any
// hydrated values.
func (i *Item) ToJSON() ([]byte, error) {
	return json.Marshal(i.Body)
}
