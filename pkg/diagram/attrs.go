package diagram

import (
	"maps"
	"slices"
)

// Attrs holds Graphviz attributes keyed by attribute name.
type Attrs map[string]string

// Clone returns a copy of a. A nil Attrs clones to an empty map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)
	return out
}

// Merge returns a new Attrs holding a overlaid with every entry of b.
// Neither a nor b is modified.
func (a Attrs) Merge(b Attrs) Attrs {
	out := a.Clone()
	maps.Copy(out, b)
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}
