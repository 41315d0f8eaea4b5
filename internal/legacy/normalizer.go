// Package legacy normalizes responses from the first-generation content
// query API, which delivers content as a JSON-LD graph of linked nodes,
// into the denormalized document shape the rest of the SDK works with.
package legacy

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
	"github.com/amplience/dc-delivery-sdk-go/pkg/content/mapper"
	"github.com/amplience/dc-delivery-sdk-go/pkg/media"
)

// JSON-LD keywords used by the V1 delivery payload.
const (
	ldID    = "@id"
	ldType  = "@type"
	ldGraph = "@graph"
)

// IRI prefixes that identify node kinds in V1 payloads.
const (
	ContentIRIPrefix = "http://content.cms.amplience.com/"
	imageIRIPrefix   = "http://image.cms.amplience.com/"
	videoIRIPrefix   = "http://video.cms.amplience.com/"
)

// ProcessResponse converts a V1 query response into a list of denormalized
// content documents: every "@id" reference is replaced with its full graph
// node, pre-schema-era records are upgraded to carry _meta, and JSON-LD
// keywords are stripped.
//
// A missing or malformed result set yields an empty list and no error; only
// the caller knows whether that amounts to not-found. References that cannot
// be resolved against the graph are reported through the returned error
// while normalization of the remaining records continues.
func ProcessResponse(data map[string]any) ([]content.Body, error) {
	results, ok := data["result"].([]any)
	if !ok {
		return nil, nil
	}
	graph, ok := data[ldGraph].([]any)
	if !ok {
		return nil, nil
	}

	nodesByID := make(map[string]map[string]any, len(graph))
	for _, raw := range graph {
		node, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := node[ldID].(string); ok {
			nodesByID[id] = node
		}
	}

	var errs *multierror.Error
	items := make([]content.Body, 0, len(results))
	for _, raw := range results {
		ref, ok := raw.(map[string]any)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("result entry is not an object"))
			continue
		}
		id, _ := ref[ldID].(string)
		node, ok := nodesByID[id]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("result reference %q not present in graph", id))
			continue
		}

		// Inline linked nodes: any nested reference is replaced with its
		// full graph node before descending, so further inlining happens on
		// the replacement.
		inlined := mapper.WalkReplace(node, mapper.WalkOptions{
			Before: func(n any) any {
				obj, ok := n.(map[string]any)
				if !ok {
					return n
				}
				if refID, ok := obj[ldID].(string); ok {
					if resolved, ok := nodesByID[refID]; ok {
						return resolved
					}
				}
				return n
			},
		})

		normalized := mapper.WalkReplace(inlined, mapper.WalkOptions{
			Before: func(n any) any {
				obj, ok := n.(map[string]any)
				if !ok {
					return n
				}
				upgradeLegacyContent(obj)
				injectMetaData(obj)
				removeJSONLD(obj)
				return obj
			},
		})

		body, ok := normalized.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, content.Body(body))
	}
	return items, errs.ErrorOrNil()
}

// upgradeLegacyContent backfills _meta.schema and _meta.name on nodes
// produced before schemas existed: the JSON-LD @type doubles as the schema
// and the legacy _title field as the name. Image and video nodes, which
// never carried @type, are recognized by their IRI prefix and get the
// corresponding media-link schema.
func upgradeLegacyContent(node map[string]any) {
	nodeType, _ := node[ldType].(string)
	id, _ := node[ldID].(string)
	isImage := strings.HasPrefix(id, imageIRIPrefix)
	isVideo := strings.HasPrefix(id, videoIRIPrefix)

	if nodeType == "" && !isImage && !isVideo {
		return
	}

	meta, ok := node["_meta"].(map[string]any)
	if !ok {
		meta = map[string]any{}
		node["_meta"] = meta
	}

	switch {
	case nodeType != "":
		if _, ok := meta["schema"]; !ok {
			meta["schema"] = nodeType
		}
		if _, ok := meta["name"]; !ok {
			if title, ok := node["_title"]; ok {
				meta["name"] = title
			}
		}
	case isImage:
		meta["schema"] = media.SchemaImageLink
	case isVideo:
		meta["schema"] = media.SchemaVideoLink
	}
}

// injectMetaData extracts the identifiers carried only by the JSON-LD @id
// before removeJSONLD discards it.
func injectMetaData(node map[string]any) {
	id, _ := node[ldID].(string)
	if id == "" {
		return
	}
	switch {
	case strings.HasPrefix(id, ContentIRIPrefix):
		meta, ok := node["_meta"].(map[string]any)
		if !ok {
			meta = map[string]any{}
			node["_meta"] = meta
		}
		meta["deliveryId"] = strings.TrimPrefix(id, ContentIRIPrefix)
	case strings.HasPrefix(id, imageIRIPrefix):
		node["id"] = strings.TrimPrefix(id, imageIRIPrefix)
	case strings.HasPrefix(id, videoIRIPrefix):
		node["id"] = strings.TrimPrefix(id, videoIRIPrefix)
	}
}

// removeJSONLD strips keywords that exist only for the delivery format.
func removeJSONLD(node map[string]any) {
	delete(node, ldType)
	delete(node, ldID)
}
