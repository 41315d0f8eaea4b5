package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

func TestFilterBy(t *testing.T) {
	t.Run("builds the filter request", func(t *testing.T) {
		var got FilterRequest
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/content/filter", r.URL.Path)
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": [], "page": {"responseCount": 0}}`))
		}))

		_, err := c.FilterByContentType("https://example.com/schema/blog.json").
			FilterBy("/category", "homewares").
			SortBy("readingTime", SortDescending).
			PageSize(10).
			Request(context.Background())
		require.NoError(t, err)

		require.Len(t, got.FilterBy, 2)
		assert.Equal(t, SchemaPath, got.FilterBy[0].Path)
		assert.Equal(t, "https://example.com/schema/blog.json", got.FilterBy[0].Value)
		assert.Equal(t, "/category", got.FilterBy[1].Path)
		require.NotNil(t, got.SortBy)
		assert.Equal(t, "readingTime", got.SortBy.Key)
		assert.Equal(t, SortDescending, got.SortBy.Order)
		require.NotNil(t, got.Page)
		assert.Equal(t, 10, got.Page.Size)
	})

	t.Run("FilterByParentID targets the hierarchy parent path", func(t *testing.T) {
		var got FilterRequest
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": [], "page": {"responseCount": 0}}`))
		}))

		_, err := c.FilterByParentID("root-id").Request(context.Background())
		require.NoError(t, err)

		require.Len(t, got.FilterBy, 1)
		assert.Equal(t, ParentIDPath, got.FilterBy[0].Path)
		assert.Equal(t, "root-id", got.FilterBy[0].Value)
	})

	t.Run("continues through pages with Next", func(t *testing.T) {
		var cursors []string
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req FilterRequest
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &req))

			cursor := ""
			if req.Page != nil {
				cursor = req.Page.Cursor
			}
			cursors = append(cursors, cursor)

			if cursor == "" {
				w.Write([]byte(`{
					"responses": [{"content": {"_meta": {"schema": "s", "name": "one", "deliveryId": "id-1"}}}],
					"page": {"responseCount": 1, "nextCursor": "CUR2"}
				}`))
				return
			}
			w.Write([]byte(`{
				"responses": [{"content": {"_meta": {"schema": "s", "name": "two", "deliveryId": "id-2"}}}],
				"page": {"responseCount": 1}
			}`))
		}))

		first, err := c.FilterByContentType("s").PageSize(1).Request(context.Background())
		require.NoError(t, err)
		require.True(t, first.HasNext())
		assert.Equal(t, "id-1", first.Responses[0].Content.DeliveryID())

		second, err := first.Next(context.Background())
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.False(t, second.HasNext())
		assert.Equal(t, "id-2", second.Responses[0].Content.DeliveryID())

		assert.Equal(t, []string{"", "CUR2"}, cursors)

		last, err := second.Next(context.Background())
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("configured locale is injected", func(t *testing.T) {
		var got FilterRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": [], "page": {"responseCount": 0}}`))
		}))
		defer srv.Close()

		c, err := New(Config{HubName: "testhub", BaseURL: srv.URL, Locale: "en-GB"})
		require.NoError(t, err)

		_, err = c.FilterByContentType("s").Request(context.Background())
		require.NoError(t, err)

		require.NotNil(t, got.Parameters)
		assert.Equal(t, "en-GB", got.Parameters.Locale)
	})

	t.Run("not supported on a V1 client", func(t *testing.T) {
		c, err := New(Config{Account: "myaccount"})
		require.NoError(t, err)

		_, err = c.FilterByContentType("s").Request(context.Background())
		var notSupported *content.NotSupportedError
		assert.ErrorAs(t, err, &notSupported)
	})
}
