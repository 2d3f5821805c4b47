// Package value implements the tagged-union result type of a statement
// evaluation: either no result (a let-binding), or a set of IPv4 or IPv6
// addresses backed by a trie.Node.
package value

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/cidrcalc/cidrcalc/pkg/trie"
)

// Kind tags which alternative of Value is populated.
type Kind int

const (
	Unit Kind = iota
	V4Set
	V6Set
)

func (k Kind) String() string {
	switch k {
	case Unit:
		return "unit"
	case V4Set:
		return "v4-set"
	case V6Set:
		return "v6-set"
	default:
		return "unknown"
	}
}

const (
	widthV4 = 32
	widthV6 = 128
)

// Value is the result of evaluating an expression: Unit, or a set of
// addresses of one family. The zero Value is Unit.
type Value struct {
	Kind Kind
	root *trie.Node
}

// NewUnit returns the Unit value produced by a let-binding statement.
func NewUnit() Value { return Value{Kind: Unit} }

// FromPrefix lifts a single CIDR block into a Value of the matching
// family, masking it first the way the canonical form requires.
func FromPrefix(p netip.Prefix) Value {
	p = p.Masked()
	addr := p.Addr()
	width := widthV4
	kind := V4Set
	if addr.Is6() {
		width = widthV6
		kind = V6Set
	}
	root := trie.Build(addr.AsSlice(), p.Bits(), width)
	return Value{Kind: kind, root: root}
}

// ErrFamilyMismatch is returned by Union/Subtract when one operand is a
// v4-set and the other a v6-set.
var ErrFamilyMismatch = errors.New("cannot combine an IPv4 set with an IPv6 set")

func (v Value) width() int {
	if v.Kind == V6Set {
		return widthV6
	}
	return widthV4
}

// Union returns the union of v and other, which must be sets of the same
// family.
func (v Value) Union(other Value) (Value, error) {
	if err := v.checkSameFamily(other, "union"); err != nil {
		return Value{}, err
	}
	width := v.width()
	root := unionRoots(v.root, other.root, width)
	return Value{Kind: v.Kind, root: root}, nil
}

// Subtract returns v minus other, which must be sets of the same family.
func (v Value) Subtract(other Value) (Value, error) {
	if err := v.checkSameFamily(other, "subtract"); err != nil {
		return Value{}, err
	}
	width := v.width()
	root := subtractRoots(v.root, other.root, width)
	return Value{Kind: v.Kind, root: root}, nil
}

func (v Value) checkSameFamily(other Value, op string) error {
	if v.Kind == Unit || other.Kind == Unit {
		return fmt.Errorf("cannot %s a unit value", op)
	}
	if v.Kind != other.Kind {
		return ErrFamilyMismatch
	}
	return nil
}

func unionRoots(a, b *trie.Node, width int) *trie.Node {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return trie.Union(a, b, width)
	}
}

func subtractRoots(a, b *trie.Node, width int) *trie.Node {
	switch {
	case a == nil:
		return nil
	case b == nil:
		return a
	default:
		r := trie.Subtract(a, b, width)
		if r.IsEmpty() {
			return nil
		}
		return r
	}
}

// Blocks enumerates v's address set as canonical, non-overlapping CIDR
// blocks in ascending order. Unit and the empty set both yield no blocks.
func (v Value) Blocks() []netip.Prefix {
	if v.Kind == Unit || v.root == nil {
		return nil
	}
	width := v.width()
	w := trie.NewWalker(v.root, width)
	var out []netip.Prefix
	for {
		raw, length, ok := w.Next()
		if !ok {
			break
		}
		addr, ok := netip.AddrFromSlice(raw)
		if !ok {
			panic("value: Blocks: malformed address bytes from walker")
		}
		out = append(out, netip.PrefixFrom(addr, length))
	}
	return out
}
