// Package mapper converts plain JSON content into hydrated values. Fragments
// whose schema has a registered converter are replaced during a bottom-up
// walk of the document; everything else stays plain JSON.
package mapper

// WalkOptions carries the replacement hooks applied during a walk.
// Before runs on a node before its children are visited; its return value is
// walked in the node's place. After runs once the children have been visited.
// Nil hooks are skipped.
type WalkOptions struct {
	Before func(node any) any
	After  func(node any) any
}

// WalkReplace traverses an arbitrarily nested JSON value (maps, slices and
// scalars) and rebuilds it, applying the hooks at every node. The walk only
// descends into map[string]any and []any values; anything else, including
// values a hook already converted to a typed struct, passes through intact.
func WalkReplace(value any, opts WalkOptions) any {
	if opts.Before != nil {
		value = opts.Before(value)
	}

	switch v := value.(type) {
	case []any:
		next := make([]any, 0, len(v))
		for _, entry := range v {
			next = append(next, WalkReplace(entry, opts))
		}
		value = next
	case map[string]any:
		next := make(map[string]any, len(v))
		for key, entry := range v {
			next[key] = WalkReplace(entry, opts)
		}
		value = next
	}

	if opts.After != nil {
		value = opts.After(value)
	}
	return value
}
