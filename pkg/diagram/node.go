package diagram

// Node is a labeled vertex standing for an external service or actor.
// Its label and kind are fixed at construction.
type Node struct {
	id      string
	kind    Kind
	label   string
	cluster *Cluster
	diagram *Diagram
}

// ID returns the node's identifier, unique within its diagram.
func (n *Node) ID() string { return n.id }

// Kind returns the node's visual category.
func (n *Node) Kind() Kind { return n.kind }

// Label returns the display label. It may contain embedded line breaks.
func (n *Node) Label() string { return n.label }

// Cluster returns the innermost cluster containing the node, or nil.
func (n *Node) Cluster() *Cluster { return n.cluster }

// To declares the edge n -> other and returns other.
//
//	a.To(b).To(c) // a -> b -> c
func (n *Node) To(other *Node) *Node {
	if d := owner(n, other); d != nil {
		return d.Connect(n, other)
	}
	return other
}

// From declares the edge n -> other drawn backwards, so the arrow points at
// n, and returns other. It reads as "n is fed from other":
//
//	cache.From(hosting) // hosting feeds cache
func (n *Node) From(other *Node) *Node {
	if d := owner(n, other); d != nil {
		return d.Connect(n, other, Reversed())
	}
	return other
}

// owner picks the diagram that records an edge between a and b. Either may
// be nil; the edge is then recorded as an error on the other one's diagram.
func owner(a, b *Node) *Diagram {
	if a != nil {
		return a.diagram
	}
	if b != nil {
		return b.diagram
	}
	return nil
}
