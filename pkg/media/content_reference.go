package media

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ContentReference is a link to another content item that was delivered
// without being inlined.
type ContentReference struct {
	// ID of the referenced content item.
	ID string `json:"id,omitempty"`

	// Name of the referenced content item.
	Name string `json:"name,omitempty"`

	// ContentType is the schema URI of the referenced item.
	ContentType string `json:"contentType,omitempty"`

	// Meta is the fragment metadata.
	Meta *Meta `json:"_meta,omitempty"`
}

// NewContentReference decodes a content-reference fragment.
func NewContentReference(fragment map[string]any) (*ContentReference, error) {
	var ref ContentReference
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &ref,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(fragment); err != nil {
		return nil, fmt.Errorf("decoding content reference: %w", err)
	}
	return &ref, nil
}

// IsContentReference reports whether the fragment node is a content-reference.
func IsContentReference(node any) bool {
	return FragmentSchema(node) == SchemaContentReference
}
