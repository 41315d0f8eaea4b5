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

func TestContentItemsByID(t *testing.T) {
	t.Run("builds one request per id with inlined defaults", func(t *testing.T) {
		var got FetchRequest
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/content/fetch", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": [
				{"content": {"_meta": {"schema": "s", "name": "one", "deliveryId": "id-1"}}},
				{"content": {"_meta": {"schema": "s", "name": "two", "deliveryId": "id-2"}}}
			]}`))
		}))

		resp, err := c.ContentItemsByID(context.Background(), "id-1", "id-2")
		require.NoError(t, err)

		assert.Equal(t, []map[string]string{{"id": "id-1"}, {"id": "id-2"}}, got.Requests)
		require.NotNil(t, got.Parameters)
		assert.Equal(t, "all", got.Parameters.Depth)
		assert.Equal(t, "inlined", got.Parameters.Format)

		require.Len(t, resp.Responses, 2)
		assert.Equal(t, "id-2", resp.Responses[1].Content.DeliveryID())
	})

	t.Run("unresolved ids are simply absent", func(t *testing.T) {
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"responses": [
				{"content": {"_meta": {"schema": "s", "name": "one", "deliveryId": "id-1"}}}
			]}`))
		}))

		resp, err := c.ContentItemsByID(context.Background(), "id-1", "missing")
		require.NoError(t, err)
		assert.Len(t, resp.Responses, 1)
	})

	t.Run("not supported on a V1 client", func(t *testing.T) {
		c, err := New(Config{Account: "myaccount"})
		require.NoError(t, err)

		_, err = c.ContentItemsByID(context.Background(), "id-1")
		var notSupported *content.NotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.Equal(t, "ContentItemsByID", notSupported.Method)
	})
}

func TestContentItemsByKey(t *testing.T) {
	var got FetchRequest
	c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{"responses": []}`))
	}))

	_, err := c.ContentItemsByKey(context.Background(), "pages/home", "pages/about")
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"key": "pages/home"}, {"key": "pages/about"}}, got.Requests)
}

func TestFetchContentItems(t *testing.T) {
	t.Run("explicit parameters override the defaults", func(t *testing.T) {
		var got FetchRequest
		c, _ := v2Client(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": []}`))
		}))

		_, err := c.FetchContentItems(context.Background(), FetchRequest{
			Requests:   []map[string]string{{"id": "id-1"}, {"key": "pages/home"}},
			Parameters: &FetchParameters{Depth: "root", Locale: "fr-FR"},
		})
		require.NoError(t, err)

		require.NotNil(t, got.Parameters)
		assert.Equal(t, "root", got.Parameters.Depth)
		assert.Equal(t, "inlined", got.Parameters.Format)
		assert.Equal(t, "fr-FR", got.Parameters.Locale)
	})

	t.Run("configured locale is the fallback", func(t *testing.T) {
		var got FetchRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			w.Write([]byte(`{"responses": []}`))
		}))
		defer srv.Close()

		c, err := New(Config{HubName: "testhub", BaseURL: srv.URL, Locale: "en-GB"})
		require.NoError(t, err)

		_, err = c.FetchContentItems(context.Background(), FetchRequest{
			Requests: []map[string]string{{"id": "id-1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "en-GB", got.Parameters.Locale)
	})
}
