package trie

import "fmt"

// AssertCanonical walks n and panics if any of invariants I1–I5 (§3 of the
// design spec) are violated. It is not called on every operation — that
// would defeat the O(|A|+|B|) cost Union/Subtract are built for — but
// several tests run it on operation results, and it is cheap enough to
// run in a host's own debug builds.
func AssertCanonical(n *Node, width int) {
	assertCanonical(n, width, true)
}

func assertCanonical(n *Node, width int, isRoot bool) {
	if n == nil {
		return
	}
	if n.Covered && (n.Left != nil || n.Right != nil) {
		panic(fmt.Sprintf("trie: invariant I1 violated at depth %d: covered node has children", n.Depth))
	}
	if !isRoot && n.IsEmpty() {
		panic(fmt.Sprintf("trie: invariant I2 violated at depth %d: empty node stored as non-root", n.Depth))
	}
	if isCovered(n.Left) && isCovered(n.Right) {
		panic(fmt.Sprintf("trie: invariant I3 violated at depth %d: both children covered", n.Depth))
	}
	if n.Depth == width && (!n.Covered || n.Left != nil || n.Right != nil) {
		panic(fmt.Sprintf("trie: invariant I4 violated at depth %d (width %d)", n.Depth, width))
	}
	if n.Left != nil && n.Left.Depth != n.Depth+1 {
		panic(fmt.Sprintf("trie: invariant I5 violated: left child depth %d at parent depth %d", n.Left.Depth, n.Depth))
	}
	if n.Right != nil && n.Right.Depth != n.Depth+1 {
		panic(fmt.Sprintf("trie: invariant I5 violated: right child depth %d at parent depth %d", n.Right.Depth, n.Depth))
	}
	assertCanonical(n.Left, width, false)
	assertCanonical(n.Right, width, false)
}
