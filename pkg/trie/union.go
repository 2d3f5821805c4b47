package trie

// Union returns the node representing the union of the address sets of a
// and b, both at the same Depth. width is the family's bit width, used
// only to assert that recursion never runs past a leaf.
//
// Both operands must be non-nil; a nil operand panics. An absent slot has
// no depth to reconstruct a node at, so callers work at the optional-child
// level (unionChild), which treats nil as the empty set, wherever a slot
// may be absent.
func Union(a, b *Node, width int) *Node {
	if a == nil || b == nil {
		panic("trie: Union: operand must not be nil; use unionChild for optional slots")
	}
	if a.Depth != b.Depth {
		panic("trie: Union: operands at different depths")
	}

	if a.Covered || b.Covered {
		return NewLeaf(a.Depth)
	}
	if a.IsEmpty() && b.IsEmpty() {
		return a
	}
	if a.Depth == width {
		panic("trie: Union: reached max depth without a covered node")
	}

	left := unionChild(a.Left, b.Left, width)
	right := unionChild(a.Right, b.Right, width)
	return collapse(a.Depth, left, right)
}

// unionChild unions two optional child slots, either of which may be
// absent (representing the empty set). Absent-absent stays absent rather
// than materializing an empty node, preserving invariant I2.
func unionChild(a, b *Node, width int) *Node {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return Union(a, b, width)
	}
}
