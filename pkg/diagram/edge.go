package diagram

import "fmt"

// Edge is a directed relation From -> To: From produces input for To.
// When Reverse is set the arrow is drawn backwards (Graphviz dir=back)
// while the endpoints keep their order.
type Edge struct {
	From    *Node
	To      *Node
	Reverse bool

	seq int // nodes declared when the edge was added
}

// NodesBefore returns how many nodes the diagram held when the edge was
// declared. Both endpoints are among them.
func (e Edge) NodesBefore() int { return e.seq }

// String formats the edge for error messages, e.g. "n1 -> n2".
func (e Edge) String() string {
	op := "->"
	if e.Reverse {
		op = "<-"
	}
	return fmt.Sprintf("%s %s %s", nodeRef(e.From), op, nodeRef(e.To))
}

func nodeRef(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.id
}

// EdgeOption configures an edge passed to [Diagram.Connect].
type EdgeOption func(*Edge)

// Reversed draws the edge backwards.
func Reversed() EdgeOption { return func(e *Edge) { e.Reverse = true } }
