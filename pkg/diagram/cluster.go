package diagram

// Cluster is a named visual grouping of nodes and nested clusters.
// It has no meaning beyond containment.
type Cluster struct {
	id       string
	label    string
	depth    int
	parent   *Cluster
	diagram  *Diagram
	nodes    []*Node
	children []*Cluster
}

// ID returns the cluster's identifier ("cluster_N"), unique within its diagram.
func (c *Cluster) ID() string { return c.id }

// Label returns the cluster's display label.
func (c *Cluster) Label() string { return c.label }

// Depth returns the nesting depth; top-level clusters have depth 0.
func (c *Cluster) Depth() int { return c.depth }

// Parent returns the enclosing cluster, or nil for a top-level cluster.
func (c *Cluster) Parent() *Cluster { return c.parent }

// Nodes returns the nodes declared directly in c, in declaration order.
func (c *Cluster) Nodes() []*Node { return append([]*Node(nil), c.nodes...) }

// Clusters returns the clusters nested directly in c, in declaration order.
func (c *Cluster) Clusters() []*Cluster { return append([]*Cluster(nil), c.children...) }

// Path returns the labels from the outermost cluster down to c.
func (c *Cluster) Path() []string {
	var path []string
	for cur := c; cur != nil; cur = cur.parent {
		path = append([]string{cur.label}, path...)
	}
	return path
}

// Node declares a node inside c.
func (c *Cluster) Node(kind Kind, label string) *Node {
	return c.diagram.addNode(kind, label, c)
}

// Cluster declares a cluster nested in c and runs fn to populate it.
func (c *Cluster) Cluster(label string, fn func(*Cluster)) *Cluster {
	return c.diagram.addCluster(label, c, fn)
}
