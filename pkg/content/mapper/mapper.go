package mapper

import (
	"regexp"

	"github.com/hashicorp/go-hclog"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
	"github.com/amplience/dc-delivery-sdk-go/pkg/media"
)

// Func converts a fragment of content into a hydrated value. A Func returns
// nil when it cannot handle the fragment, in which case the next registered
// mapper is tried.
type Func func(fragment map[string]any) any

// Mapper applies an ordered list of fragment converters to content
// documents. Built-in converters handle content item metadata, image links,
// video links and content references; custom converters can be registered by
// schema, by schema pattern, or as plain functions. The first mapper to
// claim a fragment wins. Each client owns its own Mapper, so registration is
// per-client configuration, not process state.
type Mapper struct {
	mediaConfig media.Config
	mappers     []Func
	log         hclog.Logger
}

// New creates a Mapper with the built-in converters registered.
func New(mediaConfig media.Config, log hclog.Logger) *Mapper {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	m := &Mapper{mediaConfig: mediaConfig, log: log}
	m.AddCustomMapper(m.convertContentMeta)
	m.AddCustomMapper(m.convertImage)
	m.AddCustomMapper(m.convertVideo)
	m.AddCustomMapper(m.convertContentReference)
	return m
}

// AddSchema registers a converter for fragments whose schema equals the
// given URI.
func (m *Mapper) AddSchema(schema string, fn Func) {
	m.AddCustomMapper(func(fragment map[string]any) any {
		if media.FragmentSchema(fragment) == schema {
			return fn(fragment)
		}
		return nil
	})
}

// AddSchemaMatch registers a converter for fragments whose schema matches
// the given pattern.
func (m *Mapper) AddSchemaMatch(pattern *regexp.Regexp, fn Func) {
	m.AddCustomMapper(func(fragment map[string]any) any {
		if pattern.MatchString(media.FragmentSchema(fragment)) {
			return fn(fragment)
		}
		return nil
	})
}

// AddCustomMapper appends a converter to the list. Mappers run in
// registration order, after the built-ins.
func (m *Mapper) AddCustomMapper(fn Func) {
	m.mappers = append(m.mappers, fn)
}

// ToMappedContent converts the provided content, replacing every fragment a
// registered mapper claims. The walk is bottom-up: a fragment's children are
// converted before the fragment itself is offered, and a replacement is
// never re-descended into.
func (m *Mapper) ToMappedContent(body content.Body) content.Body {
	mapped, ok := m.ToMapped(map[string]any(body)).(map[string]any)
	if !ok {
		return body
	}
	return content.Body(mapped)
}

// ToMapped is ToMappedContent for arbitrary JSON values, for callers holding
// a sub-document rather than a full body.
func (m *Mapper) ToMapped(value any) any {
	return WalkReplace(value, WalkOptions{
		After: func(node any) any {
			if content.IsFragment(node) {
				return m.mapFragment(node.(map[string]any))
			}
			return node
		},
	})
}

func (m *Mapper) mapFragment(fragment map[string]any) any {
	for _, fn := range m.mappers {
		if result := fn(fragment); result != nil {
			return result
		}
	}
	return fragment
}

// convertContentMeta replaces the "_meta" of content item fragments with a
// decoded *content.Meta, leaving the rest of the fragment in place.
func (m *Mapper) convertContentMeta(fragment map[string]any) any {
	if !content.IsContentBody(fragment) {
		return nil
	}
	meta, err := content.DecodeMeta(fragment["_meta"].(map[string]any))
	if err != nil {
		m.log.Debug("skipping malformed content meta", "error", err)
		return nil
	}
	result := make(map[string]any, len(fragment))
	for k, v := range fragment {
		result[k] = v
	}
	result["_meta"] = meta
	return result
}

func (m *Mapper) convertImage(fragment map[string]any) any {
	if !media.IsImage(fragment) {
		return nil
	}
	image, err := media.NewImage(fragment, m.mediaConfig)
	if err != nil {
		m.log.Debug("skipping malformed image fragment", "error", err)
		return nil
	}
	return image
}

func (m *Mapper) convertVideo(fragment map[string]any) any {
	if !media.IsVideo(fragment) {
		return nil
	}
	video, err := media.NewVideo(fragment, m.mediaConfig)
	if err != nil {
		m.log.Debug("skipping malformed video fragment", "error", err)
		return nil
	}
	return video
}

func (m *Mapper) convertContentReference(fragment map[string]any) any {
	if !media.IsContentReference(fragment) {
		return nil
	}
	ref, err := media.NewContentReference(fragment)
	if err != nil {
		m.log.Debug("skipping malformed content reference", "error", err)
		return nil
	}
	return ref
}
