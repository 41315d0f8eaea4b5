package content

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// FragmentMeta describes the minimal metadata every content fragment carries:
// the URI of the JSON schema the fragment was authored against.
type FragmentMeta struct {
	Schema string `json:"schema"`
}

// Hierarchy is the hierarchy status attached to a content item that is part
// of a parent/child tree.
type Hierarchy struct {
	// Root is true when the item is the root of its hierarchy.
	Root bool `json:"root"`

	// ParentID is the delivery id of the item's parent. Unset on the root.
	ParentID string `json:"parentId,omitempty"`
}

// DeliveryKey is a single human-assigned key, optionally locale-scoped.
type DeliveryKey struct {
	Locale string `json:"locale,omitempty"`
	Value  string `json:"value"`
}

// DeliveryKeys holds the alias delivery keys assigned to a content item in
// addition to its primary delivery key.
type DeliveryKeys struct {
	Values []DeliveryKey `json:"values"`
}

// Meta is the identity and lifecycle metadata of a content item, decoded from
// the item's "_meta" object. Keys the SDK does not model are preserved and
// round-trip through JSON marshalling unchanged.
type Meta struct {
	// Schema is the URI of the JSON schema identifying the content type.
	Schema string `json:"schema"`

	// Name of the content item.
	Name string `json:"name,omitempty"`

	// DeliveryID is the UUID addressing the content item.
	DeliveryID string `json:"deliveryId,omitempty"`

	// DeliveryKey is the optional human-assigned path, unique within a hub.
	DeliveryKey string `json:"deliveryKey,omitempty"`

	// DeliveryKeys lists alias keys assigned to the item.
	DeliveryKeys *DeliveryKeys `json:"deliveryKeys,omitempty"`

	// Edition describes the scheduled publish window that delivered the item,
	// when it was published through one.
	Edition *Edition `json:"edition,omitempty"`

	// Lifecycle carries the optional expiry set by business users.
	Lifecycle *Lifecycle `json:"lifecycle,omitempty"`

	// Hierarchy is set when the item participates in a hierarchy.
	Hierarchy *Hierarchy `json:"hierarchy,omitempty"`

	raw map[string]any
}

// DecodeMeta converts a raw "_meta" object into a Meta. The source map is
// retained so marshalling preserves keys the struct does not model.
func DecodeMeta(raw map[string]any) (*Meta, error) {
	var m Meta
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding _meta: %w", err)
	}
	m.raw = raw
	return &m, nil
}

// MarshalJSON emits the original "_meta" object when the Meta was decoded
// from one, so unmodelled keys survive a round trip.
func (m *Meta) MarshalJSON() ([]byte, error) {
	if m.raw != nil {
		return json.Marshal(m.raw)
	}
	type alias Meta
	return json.Marshal((*alias)(m))
}

// Validate checks the invariants delivery responses are expected to satisfy:
// a schema URI and a UUID delivery id.
func (m *Meta) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Schema, validation.Required),
		validation.Field(&m.DeliveryID, validation.Required, validation.By(validUUID)),
	)
}

func validUUID(value any) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

// IsFragment reports whether the node carries metadata self-describing the
// JSON schema it was created against. Only such nodes are offered to mappers.
func IsFragment(node any) bool {
	obj, ok := node.(map[string]any)
	if !ok {
		return false
	}
	switch meta := obj["_meta"].(type) {
	case map[string]any:
		s, ok := meta["schema"].(string)
		return ok && s != ""
	case *Meta:
		return meta.Schema != ""
	default:
		return false
	}
}

// IsContentMeta reports whether the raw meta object describes a content item
// rather than some other fragment kind.
func IsContentMeta(meta map[string]any) bool {
	if meta == nil {
		return false
	}
	if s, ok := meta["schema"].(string); !ok || s == "" {
		return false
	}
	return meta["name"] != nil || meta["deliveryId"] != nil
}

// IsContentBody reports whether the node is a content body object, i.e. an
// object whose "_meta" is content item metadata.
func IsContentBody(node any) bool {
	obj, ok := node.(map[string]any)
	if !ok {
		return false
	}
	meta, ok := obj["_meta"].(map[string]any)
	if !ok {
		return false
	}
	return IsContentMeta(meta)
}
