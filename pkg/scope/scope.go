// Package scope implements the persistent binding environment threaded
// through statement evaluation: a name-to-value mapping where every
// insert returns a new Scope sharing untouched structure with its
// predecessor, so that an earlier Scope stays valid and unchanged after a
// later statement produces a new one.
//
// The data structure is a treap (a randomized, self-balancing binary
// search tree whose heap-ordered priorities keep it shallow in expectation
// without any rebalancing logic), following the persistent-update
// discipline used for IP routing treaps in this corpus — insert walks down
// to the target, then rebuilds only the ancestors on the path back up,
// reusing every sibling subtree by reference.
package scope

import (
	"math/rand"
	"sort"

	"github.com/cidrcalc/cidrcalc/pkg/value"
)

// Scope is an immutable mapping from identifier to Value. The zero Scope
// is empty and ready to use.
type Scope struct {
	root *node
}

type node struct {
	name     string
	val      value.Value
	priority uint64
	left     *node
	right    *node
}

// Lookup returns the value bound to name and true, or the zero Value and
// false if name is unbound in s.
func (s Scope) Lookup(name string) (value.Value, bool) {
	n := s.root
	for n != nil {
		switch {
		case name == n.name:
			return n.val, true
		case name < n.name:
			n = n.left
		default:
			n = n.right
		}
	}
	return value.Value{}, false
}

// Bind returns a new Scope with name bound to val, replacing any existing
// binding for name. s itself is left unchanged.
func (s Scope) Bind(name string, val value.Value) Scope {
	return Scope{root: insert(s.root, name, val, rand.Uint64())}
}

// Keys returns every bound name, in ascending order for stable display.
func (s Scope) Keys() []string {
	var out []string
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.name)
		walk(n.right)
	}
	walk(s.root)
	sort.Strings(out)
	return out
}

// insert returns a new tree with name bound to val, reusing every subtree
// untouched by the insertion path. After a plain BST insert on the new
// leaf's path, heap-order is restored on the way back up by rotating any
// child whose priority exceeds its new parent's above it.
func insert(n *node, name string, val value.Value, priority uint64) *node {
	if n == nil {
		return &node{name: name, val: val, priority: priority}
	}

	if name == n.name {
		return &node{name: name, val: val, priority: n.priority, left: n.left, right: n.right}
	}

	if name < n.name {
		newLeft := insert(n.left, name, val, priority)
		if newLeft.priority > n.priority {
			return &node{
				name: newLeft.name, val: newLeft.val, priority: newLeft.priority,
				left:  newLeft.left,
				right: &node{name: n.name, val: n.val, priority: n.priority, left: newLeft.right, right: n.right},
			}
		}
		return &node{name: n.name, val: n.val, priority: n.priority, left: newLeft, right: n.right}
	}

	newRight := insert(n.right, name, val, priority)
	if newRight.priority > n.priority {
		return &node{
			name: newRight.name, val: newRight.val, priority: newRight.priority,
			left:  &node{name: n.name, val: n.val, priority: n.priority, left: n.left, right: newRight.left},
			right: newRight.right,
		}
	}
	return &node{name: n.name, val: n.val, priority: n.priority, left: n.left, right: newRight}
}
