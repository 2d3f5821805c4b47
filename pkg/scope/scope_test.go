package scope

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidrcalc/cidrcalc/pkg/value"
)

func TestEmptyScopeLookupMisses(t *testing.T) {
	var s Scope
	_, ok := s.Lookup("a")
	assert.False(t, ok)
	assert.Empty(t, s.Keys())
}

func TestBindThenLookup(t *testing.T) {
	v := value.FromPrefix(netip.MustParsePrefix("10.0.0.0/8"))
	s := Scope{}.Bind("a", v)

	got, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, v, got)
}

func TestBindDoesNotMutatePredecessor(t *testing.T) {
	v1 := value.FromPrefix(netip.MustParsePrefix("10.0.0.0/8"))
	v2 := value.FromPrefix(netip.MustParsePrefix("10.1.0.0/16"))

	s0 := Scope{}.Bind("a", v1)
	s1 := s0.Bind("a", v2)

	got0, _ := s0.Lookup("a")
	got1, _ := s1.Lookup("a")
	assert.Equal(t, v1, got0)
	assert.Equal(t, v2, got1)
}

func TestKeysAreSortedAndComplete(t *testing.T) {
	v := value.FromPrefix(netip.MustParsePrefix("::/0"))
	s := Scope{}.Bind("zebra", v).Bind("apple", v).Bind("mango", v)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, s.Keys())
}

func TestManyBindingsRemainConsistent(t *testing.T) {
	s := Scope{}
	v := value.FromPrefix(netip.MustParsePrefix("::/0"))
	names := []string{"n9", "n3", "n7", "n1", "n5", "n8", "n2", "n6", "n4", "n0"}
	for _, name := range names {
		s = s.Bind(name, v)
	}
	for _, name := range names {
		_, ok := s.Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Len(t, s.Keys(), len(names))
}
