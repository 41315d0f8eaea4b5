package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkReplace(t *testing.T) {
	t.Run("after hook visits children before parents", func(t *testing.T) {
		var visited []any
		doc := map[string]any{
			"a": []any{"leaf", map[string]any{"b": "deep"}},
		}
		WalkReplace(doc, WalkOptions{
			After: func(node any) any {
				if s, ok := node.(string); ok {
					visited = append(visited, s)
				}
				return node
			},
		})
		assert.Equal(t, []any{"leaf", "deep"}, visited)
	})

	t.Run("before hook replacement is walked in place", func(t *testing.T) {
		doc := map[string]any{"swap": true}
		out := WalkReplace(doc, WalkOptions{
			Before: func(node any) any {
				if b, ok := node.(bool); ok && b {
					return map[string]any{"inner": "value"}
				}
				return node
			},
		})
		m := out.(map[string]any)
		assert.Equal(t, map[string]any{"inner": "value"}, m["swap"])
	})

	t.Run("typed replacements are not descended into", func(t *testing.T) {
		type opaque struct{ Inner map[string]any }
		doc := map[string]any{
			"node": map[string]any{"kind": "special"},
		}
		calls := 0
		out := WalkReplace(doc, WalkOptions{
			After: func(node any) any {
				calls++
				if m, ok := node.(map[string]any); ok && m["kind"] == "special" {
					return opaque{Inner: m}
				}
				return node
			},
		})
		m := out.(map[string]any)
		_, ok := m["node"].(opaque)
		assert.True(t, ok)
		// The "kind" scalar, the inner map and the root map: no re-descent
		// into the opaque struct.
		assert.Equal(t, 3, calls)
	})

	t.Run("scalars pass through", func(t *testing.T) {
		assert.Equal(t, float64(3), WalkReplace(float64(3), WalkOptions{}))
		assert.Nil(t, WalkReplace(nil, WalkOptions{}))
	})

	t.Run("original document is untouched", func(t *testing.T) {
		doc := map[string]any{"list": []any{map[string]any{"k": "v"}}}
		out := WalkReplace(doc, WalkOptions{
			After: func(node any) any {
				if m, ok := node.(map[string]any); ok {
					m["touched"] = true
				}
				return node
			},
		})
		_ = out
		inner := doc["list"].([]any)[0].(map[string]any)
		_, touched := inner["touched"]
		assert.False(t, touched)
	})
}
