package hierarchy

// RootNode is the materialized tree of a descendants listing. It keeps an
// index of every node by delivery id for O(1) lookup.
type RootNode struct {
	Children []*Node

	index map[string]*Node
}

// FindByID returns the node for the given delivery id, or nil when the id
// was not part of the listing.
func (r *RootNode) FindByID(id string) *Node {
	return r.index[id]
}

// DescendantsToTree materializes a flat descendants listing into a tree in
// two passes: first every item gets a node indexed by delivery id, then each
// item is attached to the root's children (when its parent is the root) or
// to its parent's node. Because both passes run over the complete index,
// list order does not matter. Items whose parent is missing from the
// listing, for instance due to page truncation, are dropped silently.
func DescendantsToTree(rootID string, responses []ContentResponse) *RootNode {
	index := make(map[string]*Node, len(responses))
	for _, r := range responses {
		index[r.Content.DeliveryID()] = &Node{Content: r.Content, Children: []*Node{}}
	}

	root := &RootNode{index: index}
	for _, r := range responses {
		node := index[r.Content.DeliveryID()]
		parentID := r.Content.ParentID()
		if parentID == rootID {
			root.Children = append(root.Children, node)
			continue
		}
		if parent, ok := index[parentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return root
}
