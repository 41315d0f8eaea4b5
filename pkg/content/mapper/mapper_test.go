package mapper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
	"github.com/amplience/dc-delivery-sdk-go/pkg/media"
)

func imageFragment() map[string]any {
	return map[string]any{
		"_meta":       map[string]any{"schema": media.SchemaImageLink},
		"id":          "c06ee048-a0e9-4ce1-a163-1e8502e12f9b",
		"name":        "hero",
		"endpoint":    "acme",
		"defaultHost": "cdn.media.amplience.net",
	}
}

func videoFragment() map[string]any {
	return map[string]any{
		"_meta":       map[string]any{"schema": media.SchemaVideoLink},
		"id":          "e0397935-8084-4b09-87bc-8b19e6c26cc5",
		"name":        "trailer",
		"endpoint":    "acme",
		"defaultHost": "cdn.media.amplience.net",
	}
}

func referenceFragment() map[string]any {
	return map[string]any{
		"_meta":       map[string]any{"schema": media.SchemaContentReference},
		"id":          "e63e85f2-1c72-46c9-9f1b-a2b28cb71a3d",
		"contentType": "https://example.com/schema/linked.json",
	}
}

func contentBody() content.Body {
	return content.Body{
		"_meta": map[string]any{
			"schema":     "https://example.com/schema/page.json",
			"name":       "page",
			"deliveryId": "faf62f4b-fd80-4b82-a356-17dd9f01132d",
		},
		"title": "hello",
		"image": imageFragment(),
		"related": []any{
			videoFragment(),
			referenceFragment(),
		},
	}
}

func TestMapperBuiltIns(t *testing.T) {
	m := New(media.Config{}, nil)

	t.Run("content metadata is decoded", func(t *testing.T) {
		mapped := m.ToMappedContent(contentBody())

		meta, ok := mapped["_meta"].(*content.Meta)
		require.True(t, ok)
		assert.Equal(t, "page", meta.Name)
		assert.Equal(t, "hello", mapped["title"])
	})

	t.Run("image fragments become Image values", func(t *testing.T) {
		mapped := m.ToMappedContent(contentBody())

		img, ok := mapped["image"].(*media.Image)
		require.True(t, ok)
		assert.Equal(t, "hero", img.Name)
		assert.Equal(t, "acme", img.Endpoint)
	})

	t.Run("media fragments inside arrays are converted", func(t *testing.T) {
		mapped := m.ToMappedContent(contentBody())

		related, ok := mapped["related"].([]any)
		require.True(t, ok)
		require.Len(t, related, 2)

		video, ok := related[0].(*media.Video)
		require.True(t, ok)
		assert.Equal(t, "trailer", video.Name)

		ref, ok := related[1].(*media.ContentReference)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/schema/linked.json", ref.ContentType)
	})

	t.Run("fragments without a schema pass through untouched", func(t *testing.T) {
		body := content.Body{"title": "plain", "nested": map[string]any{"x": float64(1)}}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, body, mapped)
	})

	t.Run("the input body is not modified", func(t *testing.T) {
		body := contentBody()
		_ = m.ToMappedContent(body)

		_, stillRaw := body["image"].(map[string]any)
		assert.True(t, stillRaw)
	})
}

func TestMapperCustom(t *testing.T) {
	t.Run("AddSchema claims matching fragments", func(t *testing.T) {
		m := New(media.Config{}, nil)
		m.AddSchema("https://example.com/schema/money.json", func(fragment map[string]any) any {
			return fragment["amount"]
		})

		body := content.Body{
			"_meta": map[string]any{
				"schema":     "https://example.com/schema/page.json",
				"name":       "page",
				"deliveryId": "faf62f4b-fd80-4b82-a356-17dd9f01132d",
			},
			"price": map[string]any{
				"_meta":  map[string]any{"schema": "https://example.com/schema/money.json"},
				"amount": float64(42),
			},
		}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, float64(42), mapped["price"])
	})

	t.Run("AddSchemaMatch claims by pattern", func(t *testing.T) {
		m := New(media.Config{}, nil)
		m.AddSchemaMatch(regexp.MustCompile(`schema/v[0-9]+/widget`), func(fragment map[string]any) any {
			return "widget"
		})

		body := content.Body{
			"slot": map[string]any{
				"_meta": map[string]any{"schema": "https://example.com/schema/v2/widget.json"},
			},
		}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, "widget", mapped["slot"])
	})

	t.Run("first matching mapper wins", func(t *testing.T) {
		m := New(media.Config{}, nil)
		m.AddSchema("https://example.com/schema/x.json", func(map[string]any) any { return "first" })
		m.AddSchema("https://example.com/schema/x.json", func(map[string]any) any { return "second" })

		body := content.Body{
			"x": map[string]any{"_meta": map[string]any{"schema": "https://example.com/schema/x.json"}},
		}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, "first", mapped["x"])
	})

	t.Run("a mapper returning nil defers to later mappers", func(t *testing.T) {
		m := New(media.Config{}, nil)
		m.AddCustomMapper(func(map[string]any) any { return nil })
		m.AddSchema("https://example.com/schema/x.json", func(map[string]any) any { return "handled" })

		body := content.Body{
			"x": map[string]any{"_meta": map[string]any{"schema": "https://example.com/schema/x.json"}},
		}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, "handled", mapped["x"])
	})

	t.Run("children are converted before their parent is offered", func(t *testing.T) {
		m := New(media.Config{}, nil)
		m.AddSchema("https://example.com/schema/wrapper.json", func(fragment map[string]any) any {
			// The nested image must already be hydrated when the wrapper
			// is offered.
			_, ok := fragment["image"].(*media.Image)
			return ok
		})

		body := content.Body{
			"wrapper": map[string]any{
				"_meta": map[string]any{"schema": "https://example.com/schema/wrapper.json"},
				"image": imageFragment(),
			},
		}
		mapped := m.ToMappedContent(body)
		assert.Equal(t, true, mapped["wrapper"])
	})
}

func TestMapperIdempotence(t *testing.T) {
	m := New(media.Config{}, nil)

	once := m.ToMappedContent(contentBody())
	twice := m.ToMappedContent(once)

	assert.Equal(t, once, twice)
}
