package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNode is recorded when an edge is declared with a nil endpoint.
	ErrNilNode = errors.New("node must not be nil")

	// ErrForeignNode is recorded when an edge references a node that was
	// declared in another diagram. Such an edge would dangle once the
	// diagram is transcribed, so it is not added.
	ErrForeignNode = errors.New("node belongs to another diagram")

	// ErrSealed is recorded when a node, cluster or edge is added after the
	// construction pass has ended.
	ErrSealed = errors.New("diagram is sealed")

	// ErrInvalidName is returned by [ValidateName] and [Diagram.Validate] when
	// the diagram name is not a plain file base name.
	ErrInvalidName = errors.New("invalid diagram name")

	// ErrDanglingEdge is returned by [Diagram.Validate] when an edge endpoint
	// is not one of the diagram's declared nodes.
	ErrDanglingEdge = errors.New("edge references undeclared node")

	// ErrForeignCluster is returned by [Diagram.Validate] when a node claims
	// membership in a cluster that is not part of the diagram.
	ErrForeignCluster = errors.New("cluster belongs to another diagram")
)

// Direction is the Graphviz rankdir of a diagram.
type Direction string

const (
	LeftToRight Direction = "LR"
	RightToLeft Direction = "RL"
	TopToBottom Direction = "TB"
	BottomToTop Direction = "BT"
)

// DefaultDirection matches the drawing library the diagrams were first
// authored against.
const DefaultDirection = LeftToRight

// Diagram is the root container of one architecture graph.
//
// The zero value is not usable; create diagrams with [New] or [Draw].
// A Diagram is not safe for concurrent use. Each render builds its own.
type Diagram struct {
	name      string
	title     string
	direction Direction
	graphAttr Attrs

	nodes    []*Node
	edges    []Edge
	clusters []*Cluster // top-level clusters only
	nCluster int        // clusters at any depth, for ID assignment

	sealed bool
	errs   []error
}

// Option configures a Diagram at creation time.
type Option func(*Diagram)

// WithTitle sets the label drawn above the graph. An empty title draws none.
func WithTitle(title string) Option {
	return func(d *Diagram) { d.title = title }
}

// WithGraphAttr sets global Graphviz graph attributes (for example
// "margin" and "pad"). Later calls merge over earlier ones.
func WithGraphAttr(attrs Attrs) Option {
	return func(d *Diagram) { d.graphAttr = d.graphAttr.Merge(attrs) }
}

// WithDirection sets the layout direction. The default is [DefaultDirection].
func WithDirection(dir Direction) Option {
	return func(d *Diagram) { d.direction = dir }
}

// New creates an open diagram named name. The name is the output base name;
// it is checked by [Diagram.Validate], not here.
func New(name string, opts ...Option) *Diagram {
	d := &Diagram{
		name:      name,
		direction: DefaultDirection,
		graphAttr: Attrs{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Draw runs one scoped construction pass: it creates the diagram, calls fn
// and seals the diagram when fn returns. The seal happens even if fn panics.
// The returned error joins everything recorded during construction; the
// diagram is returned in either case.
func Draw(name string, fn func(*Diagram), opts ...Option) (*Diagram, error) {
	d := New(name, opts...)
	func() {
		defer d.Seal()
		fn(d)
	}()
	return d, d.Err()
}

// Seal ends the construction pass. Sealing twice is a no-op.
func (d *Diagram) Seal() { d.sealed = true }

// Sealed reports whether the construction pass has ended.
func (d *Diagram) Sealed() bool { return d.sealed }

// Err returns the errors recorded during construction, joined, or nil.
func (d *Diagram) Err() error { return errors.Join(d.errs...) }

func (d *Diagram) record(err error) { d.errs = append(d.errs, err) }

// Name returns the output base name.
func (d *Diagram) Name() string { return d.name }

// Title returns the label drawn above the graph, possibly empty.
func (d *Diagram) Title() string { return d.title }

// Direction returns the layout direction.
func (d *Diagram) Direction() Direction { return d.direction }

// GraphAttr returns a copy of the global graph attributes.
func (d *Diagram) GraphAttr() Attrs { return d.graphAttr.Clone() }

// Filename returns the output file name for the given extension,
// e.g. "pipeline.png".
func (d *Diagram) Filename(ext string) string {
	return d.name + "." + ext
}

// Nodes returns all nodes in declaration order.
func (d *Diagram) Nodes() []*Node { return append([]*Node(nil), d.nodes...) }

// Edges returns all edges in declaration order.
func (d *Diagram) Edges() []Edge { return append([]Edge(nil), d.edges...) }

// Clusters returns the top-level clusters in declaration order.
// Nested clusters are reached through [Cluster.Clusters].
func (d *Diagram) Clusters() []*Cluster { return append([]*Cluster(nil), d.clusters...) }

// NodeCount returns the number of declared nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of declared edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// ClusterCount returns the number of clusters at any depth.
func (d *Diagram) ClusterCount() int { return d.nCluster }

// Node declares a node outside any cluster.
// It returns nil if the diagram is sealed.
func (d *Diagram) Node(kind Kind, label string) *Node {
	return d.addNode(kind, label, nil)
}

// Cluster declares a top-level cluster and runs fn to populate it.
// fn may be nil. It returns nil if the diagram is sealed.
func (d *Diagram) Cluster(label string, fn func(*Cluster)) *Cluster {
	return d.addCluster(label, nil, fn)
}

func (d *Diagram) addNode(kind Kind, label string, c *Cluster) *Node {
	if d.sealed {
		d.record(fmt.Errorf("node %q: %w", label, ErrSealed))
		return nil
	}
	n := &Node{
		id:      fmt.Sprintf("n%d", len(d.nodes)+1),
		kind:    kind,
		label:   label,
		cluster: c,
		diagram: d,
	}
	d.nodes = append(d.nodes, n)
	if c != nil {
		c.nodes = append(c.nodes, n)
	}
	return n
}

func (d *Diagram) addCluster(label string, parent *Cluster, fn func(*Cluster)) *Cluster {
	if d.sealed {
		d.record(fmt.Errorf("cluster %q: %w", label, ErrSealed))
		return nil
	}
	d.nCluster++
	c := &Cluster{
		id:      fmt.Sprintf("cluster_%d", d.nCluster),
		label:   label,
		parent:  parent,
		diagram: d,
	}
	if parent == nil {
		d.clusters = append(d.clusters, c)
	} else {
		c.depth = parent.depth + 1
		parent.children = append(parent.children, c)
	}
	if fn != nil {
		fn(c)
	}
	return c
}

// Connect declares the edge from -> to and returns to, so calls chain.
// Problems (nil or foreign endpoints, sealed diagram) are recorded and the
// edge is skipped.
func (d *Diagram) Connect(from, to *Node, opts ...EdgeOption) *Node {
	e := Edge{From: from, To: to}
	for _, opt := range opts {
		opt(&e)
	}

	switch {
	case d.sealed:
		d.record(fmt.Errorf("edge %s: %w", e, ErrSealed))
	case from == nil || to == nil:
		d.record(fmt.Errorf("edge %s: %w", e, ErrNilNode))
	case from.diagram != d || to.diagram != d:
		d.record(fmt.Errorf("edge %s: %w", e, ErrForeignNode))
	default:
		e.seq = len(d.nodes)
		d.edges = append(d.edges, e)
	}
	return to
}
