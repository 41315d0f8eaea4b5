// Package query selects values out of content bodies with JSONPath
// expressions, for callers that want to pull fragments out of deeply nested
// documents without writing traversal code.
package query

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// Select returns every value in the body matching the JSONPath expression.
// Typed values produced by mapping are opaque to the path engine, so Select
// is most useful on plain (unmapped or flattened) bodies.
func Select(body content.Body, path string) ([]any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", path, err)
	}
	return expr.Get(map[string]any(body)), nil
}

// First returns the first value matching the JSONPath expression, or nil
// when nothing matches.
func First(body content.Body, path string) (any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", path, err)
	}
	return expr.First(map[string]any(body)), nil
}
