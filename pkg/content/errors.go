package content

import (
	"encoding/json"
	"fmt"
)

// NotFoundError is returned when a content item cannot be located, either
// because the delivery API answered 404 or because a query produced no
// record for the requested id or key.
type NotFoundError struct {
	// ContentItem is the id or key that was requested.
	ContentItem string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("content item %q was not found", e.ContentItem)
}

// HTTPError is returned when the delivery API answers with a non-success
// status. It carries the status code and the raw response body.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("delivery API returned status %d: %s", e.StatusCode, e.Message())
}

// Message extracts a human-readable message from the response body: a
// non-JSON body is used verbatim, a JSON body with error.message yields
// that message, anything else yields the raw JSON.
func (e *HTTPError) Message() string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return string(e.Body)
	}
	if payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(e.Body)
}

// NotSupportedError is returned synchronously, before any network activity,
// when an operation requires a configuration property the client was not
// constructed with.
type NotSupportedError struct {
	// Property is the configuration property the operation requires.
	Property string

	// Method is the operation that was attempted.
	Method string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("not supported: the %q configuration property is required to use %s", e.Property, e.Method)
}

// RootMismatchError is returned when a hierarchy request is made against a
// root item whose identity does not match the requested root. Assembly never
// proceeds on a mismatched root.
type RootMismatchError struct {
	// Requested is the root id or key named in the request.
	Requested string

	// Got is the identity of the supplied or fetched root item.
	Got string
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("the root item id (%s) does not match the requested root (%s)", e.Got, e.Requested)
}
