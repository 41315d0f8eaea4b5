package hierarchy

import (
	"net/url"
	"strconv"
	"strings"
)

// Descendants endpoint path and query parameter names.
const (
	descendantsPath    = "/content/hierarchies/descendants/"
	paramMaximumDepth  = "hierarchyDepth"
	paramMaxPageSize   = "maxPageSize"
	paramPageCursor    = "pageCursor"
	paramSortKey       = "sortByKey"
	paramSortOrder     = "sortByOrder"
)

// BuildURL returns the descendants listing path for the request. Optional
// query parameters appear only when set, in a fixed order, with values
// percent-encoded. A request with no optional parameters yields a bare path.
func BuildURL(req Request) string {
	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = DeliveryTypeID
	}

	var params [][2]string
	if req.MaximumDepth != 0 {
		params = append(params, [2]string{paramMaximumDepth, strconv.Itoa(req.MaximumDepth)})
	}
	if req.MaximumPageSize != 0 {
		params = append(params, [2]string{paramMaxPageSize, strconv.Itoa(req.MaximumPageSize)})
	}
	if req.PageCursor != "" {
		params = append(params, [2]string{paramPageCursor, req.PageCursor})
	}
	if req.SortKey != "" {
		params = append(params, [2]string{paramSortKey, req.SortKey})
	}
	if req.SortOrder != "" {
		params = append(params, [2]string{paramSortOrder, string(req.SortOrder)})
	}

	var sb strings.Builder
	sb.WriteString(descendantsPath)
	sb.WriteString(string(deliveryType))
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(req.RootID))
	for i, p := range params {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		sb.WriteString(p[0])
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String()
}
