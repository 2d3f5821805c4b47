// Package trie implements a compressed binary trie representing an
// arbitrary set of IP addresses within a single address family.
//
// A Node is immutable once constructed. Operations (Union, Subtract) never
// mutate their operands; they build new nodes, reusing unchanged subtrees
// by reference. The same subtree may be reachable from multiple trees at
// once — this is safe because nothing ever writes through a Node pointer
// after it is built.
//
// The trie is generic over address width: callers pass the family's bit
// width (32 for IPv4, 128 for IPv6) into every operation rather than the
// package carrying two specialized node types. A Node itself stores no
// width; Depth is relative to the root and compared against the caller's
// width where the canonical-form invariants require it.
//
// Canonical form, maintained by every exported operation:
//
//   - a covered node has no children (it already represents its whole range)
//   - a childless, non-covered node is the empty set and is only ever the
//     root of a tree; no subtree stores it, the parent's slot is nil instead
//   - two covered siblings collapse their parent to covered
//   - a node at Depth == width is always covered and childless
package trie
