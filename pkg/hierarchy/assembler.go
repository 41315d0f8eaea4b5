package hierarchy

import (
	"github.com/amplience/dc-delivery-sdk-go/pkg/content"
)

// Node is one content item in an assembled hierarchy.
type Node struct {
	Content  content.Body `json:"content"`
	Children []*Node      `json:"children"`
}

// Policy parameterizes assembly. Both fields are optional.
//
// Filter is consulted before a candidate child is attached; returning true
// excludes the candidate and, because its subtree is never visited for
// attachment, all of its descendants with it.
//
// Mutate transforms a body before it becomes a node's content. The returned
// body is also what further descendants are matched against, so a mutator
// must preserve _meta.deliveryId or the tree disconnects below it. When
// Mutate is set the root body is mutated too and used live; without it the
// root is flattened to plain JSON first.
type Policy struct {
	Filter func(content.Body) bool
	Mutate func(content.Body) content.Body
}

// IsParent reports whether item declares parent as its hierarchy parent:
// the item's _meta.hierarchy.parentId must be set and equal the parent's
// _meta.deliveryId.
func IsParent(parent, item content.Body) bool {
	parentID := item.ParentID()
	return parentID != "" && parentID == parent.DeliveryID()
}

// AssembleRoot builds the hierarchy tree for the given root body from the
// accumulated flat descendant set. Children appear in the flat set's
// original order; sorting is a server-side concern requested through the
// listing's sort parameters, never recomputed here.
//
// Items whose declared parent does not appear in the assembled tree are
// dropped silently: server-side depth and page limits can legitimately
// truncate the set. There is no cycle protection; the upstream API
// guarantees a DAG rooted at a single parent chain.
func AssembleRoot(root content.Body, flat []ContentResponse, policy Policy) (*Node, error) {
	rootContent := root
	if policy.Mutate != nil {
		rootContent = policy.Mutate(root)
	} else {
		plain, err := root.Plain()
		if err != nil {
			return nil, err
		}
		rootContent = plain
	}

	node := &Node{Content: rootContent, Children: []*Node{}}
	// Matching runs against the original root body: flattening (or a
	// mutator that keeps deliveryId) does not change identity.
	assembleChildren(node, root, flat, policy)
	return node, nil
}

func assembleChildren(node *Node, matchBody content.Body, flat []ContentResponse, policy Policy) {
	for _, item := range flat {
		if !IsParent(matchBody, item.Content) {
			continue
		}
		if policy.Filter != nil && policy.Filter(item.Content) {
			continue
		}
		childContent := item.Content
		if policy.Mutate != nil {
			childContent = policy.Mutate(item.Content)
		}
		child := &Node{Content: childContent, Children: []*Node{}}
		node.Children = append(node.Children, child)
		assembleChildren(child, childContent, flat, policy)
	}
}
