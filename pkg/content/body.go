package content

import "encoding/json"

// Body is the JSON body of a content item. It contains whatever fields the
// item's content type defines, plus a "_meta" object. After mapping, nested
// fragments may have been replaced with typed values (Meta, media types or
// custom mapper output); all of them marshal back to plain JSON.
type Body map[string]any

// Meta returns the item's decoded metadata. It handles both raw bodies
// (whose "_meta" is still a JSON object) and mapped bodies (whose "_meta"
// was converted to *Meta). Returns nil when no usable metadata is present.
func (b Body) Meta() *Meta {
	switch meta := b["_meta"].(type) {
	case *Meta:
		return meta
	case map[string]any:
		m, err := DecodeMeta(meta)
		if err != nil {
			return nil
		}
		return m
	default:
		return nil
	}
}

// DeliveryID returns the item's delivery id, or "" when absent.
func (b Body) DeliveryID() string {
	switch meta := b["_meta"].(type) {
	case *Meta:
		return meta.DeliveryID
	case map[string]any:
		s, _ := meta["deliveryId"].(string)
		return s
	default:
		return ""
	}
}

// DeliveryKey returns the item's primary delivery key, or "" when absent.
func (b Body) DeliveryKey() string {
	switch meta := b["_meta"].(type) {
	case *Meta:
		return meta.DeliveryKey
	case map[string]any:
		s, _ := meta["deliveryKey"].(string)
		return s
	default:
		return ""
	}
}

// ParentID returns the delivery id of the item's hierarchy parent, or ""
// when the item has no hierarchy metadata or is a root.
func (b Body) ParentID() string {
	switch meta := b["_meta"].(type) {
	case *Meta:
		if meta.Hierarchy == nil {
			return ""
		}
		return meta.Hierarchy.ParentID
	case map[string]any:
		h, ok := meta["hierarchy"].(map[string]any)
		if !ok {
			return ""
		}
		s, _ := h["parentId"].(string)
		return s
	default:
		return ""
	}
}

// MatchesKey reports whether the given delivery key addresses this item,
// either as its primary key or through one of its alias keys.
func (b Body) MatchesKey(key string) bool {
	if b.DeliveryKey() == key {
		return true
	}
	meta := b.Meta()
	if meta == nil || meta.DeliveryKeys == nil {
		return false
	}
	for _, k := range meta.DeliveryKeys.Values {
		if k.Value == key {
			return true
		}
	}
	return false
}

// Plain returns a copy of the body flattened to plain JSON values, with any
// typed values produced by mapping serialized back to their JSON form.
func (b Body) Plain() (Body, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	var out Body
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
