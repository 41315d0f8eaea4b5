package delivery

import (
	"context"
	"fmt"

	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
	"github.com/amplience/dc-delivery-sdk-go/pkg/hierarchy"
)

// HierarchyRequest describes a hierarchy read. Root is a delivery id or key
// depending on the method the request is passed to.
type HierarchyRequest struct {
	// Root is the delivery id or key of the hierarchy root.
	Root string

	// MaximumDepth limits how deep the server traverses below the root.
	MaximumDepth int

	// MaximumPageSize limits the number of descendants per page.
	MaximumPageSize int

	// SortKey is a custom sortable field path to order siblings by,
	// applied server-side.
	SortKey string

	// SortOrder is the direction applied to SortKey.
	SortOrder hierarchy.SortOrder

	// RootItem, when set, is used as the hierarchy root instead of fetching
	// one. Its identity must match Root.
	RootItem *Item
}

// GetByHierarchy loads the hierarchy rooted at a delivery id and returns
// the root with all descendants attached, fetching the root item first when
// one was not supplied.
func (c *Client) GetByHierarchy(ctx context.Context, req HierarchyRequest) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeID, hierarchy.Policy{}, "GetByHierarchy")
}

// GetHierarchyByKey is GetByHierarchy addressing the root by delivery key.
func (c *Client) GetHierarchyByKey(ctx context.Context, req HierarchyRequest) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeKey, hierarchy.Policy{}, "GetHierarchyByKey")
}

// GetByHierarchyAndFilter loads a hierarchy by id, excluding every item for
// which filter returns true together with its entire subtree.
func (c *Client) GetByHierarchyAndFilter(ctx context.Context, req HierarchyRequest, filter func(content.Body) bool) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeID, hierarchy.Policy{Filter: filter}, "GetByHierarchyAndFilter")
}

// GetHierarchyByKeyAndFilter is GetByHierarchyAndFilter addressing the root
// by delivery key.
func (c *Client) GetHierarchyByKeyAndFilter(ctx context.Context, req HierarchyRequest, filter func(content.Body) bool) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeKey, hierarchy.Policy{Filter: filter}, "GetHierarchyByKeyAndFilter")
}

// GetByHierarchyAndMutate loads a hierarchy by id, transforming every
// node's content with mutate as the tree is assembled. The mutator must
// preserve _meta.deliveryId or descendants below the mutated node are lost.
func (c *Client) GetByHierarchyAndMutate(ctx context.Context, req HierarchyRequest, mutate func(content.Body) content.Body) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeID, hierarchy.Policy{Mutate: mutate}, "GetByHierarchyAndMutate")
}

// GetHierarchyByKeyAndMutate is GetByHierarchyAndMutate addressing the root
// by delivery key.
func (c *Client) GetHierarchyByKeyAndMutate(ctx context.Context, req HierarchyRequest, mutate func(content.Body) content.Body) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeKey, hierarchy.Policy{Mutate: mutate}, "GetHierarchyByKeyAndMutate")
}

// GetByHierarchyWithPolicy loads a hierarchy by id with an arbitrary
// combination of filter and mutation policies. Filtering runs before
// mutation at every level.
func (c *Client) GetByHierarchyWithPolicy(ctx context.Context, req HierarchyRequest, policy hierarchy.Policy) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeID, policy, "GetByHierarchyWithPolicy")
}

// GetHierarchyByKeyWithPolicy is GetByHierarchyWithPolicy addressing the
// root by delivery key.
func (c *Client) GetHierarchyByKeyWithPolicy(ctx context.Context, req HierarchyRequest, policy hierarchy.Policy) (*hierarchy.Node, error) {
	return c.getByHierarchy(ctx, req, hierarchy.DeliveryTypeKey, policy, "GetHierarchyByKeyWithPolicy")
}

func (c *Client) getByHierarchy(ctx context.Context, req HierarchyRequest, deliveryType hierarchy.DeliveryType, policy hierarchy.Policy, method string) (*hierarchy.Node, error) {
	if !c.config.isV2() {
		return nil, &content.NotSupportedError{Property: "HubName", Method: method}
	}

	root, err := c.hierarchyRootItem(ctx, req, deliveryType)
	if err != nil {
		return nil, err
	}

	fetcher := hierarchy.NewFetcher(c.transport, c.log)
	flat, err := fetcher.GetByHierarchy(ctx, hierarchy.Request{
		RootID:          req.Root,
		DeliveryType:    deliveryType,
		MaximumDepth:    req.MaximumDepth,
		MaximumPageSize: req.MaximumPageSize,
		SortKey:         req.SortKey,
		SortOrder:       req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	return hierarchy.AssembleRoot(root.Body, flat, policy)
}

// hierarchyRootItem resolves the root item (fetching it when not supplied)
// and validates that its identity matches the request. Assembly never
// proceeds on a mismatched root.
func (c *Client) hierarchyRootItem(ctx context.Context, req HierarchyRequest, deliveryType hierarchy.DeliveryType) (*Item, error) {
	root := req.RootItem
	if root == nil {
		var err error
		if deliveryType == hierarchy.DeliveryTypeKey {
			root, err = c.ContentItemByKey(ctx, req.Root)
		} else {
			root, err = c.ContentItemByID(ctx, req.Root)
		}
		if err != nil {
			return nil, fmt.Errorf("error while retrieving hierarchy root item: %w", err)
		}
	}

	if deliveryType == hierarchy.DeliveryTypeKey {
		if !root.Body.MatchesKey(req.Root) {
			return nil, &content.RootMismatchError{Requested: req.Root, Got: root.Body.DeliveryKey()}
		}
	} else if root.Body.DeliveryID() != req.Root {
		return nil, &content.RootMismatchError{Requested: req.Root, Got: root.Body.DeliveryID()}
	}
	return root, nil
}

// DescendantsResponse is the raw descendants listing of a hierarchy root,
// materializable into a tree without refetching.
type DescendantsResponse struct {
	Responses []hierarchy.ContentResponse `json:"responses"`
	Page      hierarchy.Page              `json:"page"`

	rootID string
}

// AsTree materializes the listing into a tree with O(1) node lookup by
// delivery id.
func (r *DescendantsResponse) AsTree() *hierarchy.RootNode {
	return hierarchy.DescendantsToTree(r.rootID, r.Responses)
}

// HierarchyDescendantsByID fetches a single page of the descendants listing
// for the given root id.
func (c *Client) HierarchyDescendantsByID(ctx context.Context, id string) (*DescendantsResponse, error) {
	if !c.config.isV2() {
		return nil, &content.NotSupportedError{Property: "HubName", Method: "HierarchyDescendantsByID"}
	}

	var resp DescendantsResponse
	if err := c.transport.Get(ctx, hierarchy.BuildURL(hierarchy.Request{RootID: id}), &resp); err != nil {
		return nil, err
	}
	resp.rootID = id
	return &resp, nil
}
