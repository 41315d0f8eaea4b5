// Package media provides value types for image and video resources delivered
// inside content bodies, plus URL builders for the dynamic media service.
package media

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// Schema URIs of the media fragment kinds the SDK recognizes.
const (
	SchemaImageLink        = "http://bigcontent.io/cms/schema/v1/core#/definitions/image-link"
	SchemaVideoLink        = "http://bigcontent.io/cms/schema/v1/core#/definitions/video-link"
	SchemaContentReference = "http://bigcontent.io/cms/schema/v1/core#/definitions/content-reference"
)

// Config controls how media hostnames are resolved. All fields are optional;
// when unset the defaultHost delivered with the resource is used.
type Config struct {
	// StagingEnvironment, when set, overrides every media host so that
	// unpublished media can be previewed.
	StagingEnvironment string

	// MediaHost is a branded hostname for plain HTTP media URLs.
	MediaHost string

	// SecureMediaHost is a branded hostname for HTTPS media URLs.
	SecureMediaHost string
}

// Meta is the fragment metadata attached to a media resource.
type Meta struct {
	Schema string `json:"schema"`
}

// Media is the common shape of image and video resources.
type Media struct {
	// DefaultHost is the hostname delivered with the resource.
	DefaultHost string `json:"defaultHost,omitempty"`

	// Endpoint is the account name used when constructing resource URLs.
	Endpoint string `json:"endpoint,omitempty"`

	// Name of the media object.
	Name string `json:"name,omitempty"`

	// ID of the media object.
	ID string `json:"id,omitempty"`

	// Meta is the fragment metadata.
	Meta *Meta `json:"_meta,omitempty"`

	cfg Config
}

// Host returns the hostname that should be used to load this resource,
// honoring the staging environment and branded host overrides.
func (m Media) Host(secure bool) string {
	if m.cfg.StagingEnvironment != "" {
		return m.cfg.StagingEnvironment
	}
	if secure {
		if m.cfg.SecureMediaHost != "" {
			return m.cfg.SecureMediaHost
		}
		return m.DefaultHost
	}
	if m.cfg.MediaHost != "" {
		return m.cfg.MediaHost
	}
	if m.cfg.SecureMediaHost != "" {
		return m.cfg.SecureMediaHost
	}
	return m.DefaultHost
}

func decodeMedia(fragment map[string]any, cfg Config) (Media, error) {
	var m Media
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Media{}, err
	}
	if err := dec.Decode(fragment); err != nil {
		return Media{}, fmt.Errorf("decoding media fragment: %w", err)
	}
	m.cfg = cfg
	return m, nil
}

// FragmentSchema returns the schema URI of a fragment node, tolerating both
// raw metadata objects and already-decoded metadata values.
func FragmentSchema(node any) string {
	obj, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	switch meta := obj["_meta"].(type) {
	case map[string]any:
		s, _ := meta["schema"].(string)
		return s
	case *content.Meta:
		return meta.Schema
	default:
		return ""
	}
}
