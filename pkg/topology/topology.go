// Package topology analyses the data flow of a diagram.
//
// A diagram edge is drawn from its first endpoint to its second; a reversed
// edge is drawn backwards, so data flows from its second endpoint to its
// first. [Build] turns a sealed diagram into a directed graph of that flow
// (backed by github.com/dominikbraun/graph) and answers the questions
// documentation readers ask of an architecture picture: where does data
// enter, where does it end up, and in what order do the services run.
//
// All results list node IDs in a stable order: declaration order unless
// stated otherwise.
package topology

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"

	"github.com/doctran/archdiag/pkg/diagram"
)

// Topology is the flow graph of one diagram.
type Topology struct {
	g     graph.Graph[string, string]
	order map[string]int // node ID -> declaration index
	nodes []*diagram.Node
}

// Build creates the flow graph of d. Repeated edges between the same pair
// of nodes collapse into one; self-loops are kept.
func Build(d *diagram.Diagram) (*Topology, error) {
	t := &Topology{
		g:     graph.New(graph.StringHash, graph.Directed()),
		order: make(map[string]int, d.NodeCount()),
		nodes: d.Nodes(),
	}
	for i, n := range t.nodes {
		if err := t.g.AddVertex(n.ID()); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID(), err)
		}
		t.order[n.ID()] = i
	}
	for _, e := range d.Edges() {
		src, dst := Flow(e)
		err := t.g.AddEdge(src.ID(), dst.ID())
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("edge %s: %w", e, err)
		}
	}
	return t, nil
}

// Flow returns the endpoints of e in data-flow order.
func Flow(e diagram.Edge) (src, dst *diagram.Node) {
	if e.Reverse {
		return e.To, e.From
	}
	return e.From, e.To
}

// Sources returns the nodes that no flow enters.
func (t *Topology) Sources() []string {
	pred, err := t.g.PredecessorMap()
	if err != nil {
		return nil
	}
	return t.filter(func(id string) bool { return len(pred[id]) == 0 })
}

// Sinks returns the nodes that no flow leaves.
func (t *Topology) Sinks() []string {
	adj, err := t.g.AdjacencyMap()
	if err != nil {
		return nil
	}
	return t.filter(func(id string) bool { return len(adj[id]) == 0 })
}

// Successors returns the nodes that id flows into directly.
func (t *Topology) Successors(id string) []string {
	adj, err := t.g.AdjacencyMap()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(adj[id]))
	for next := range adj[id] {
		out = append(out, next)
	}
	t.sort(out)
	return out
}

// Reachable returns every node reachable from id, excluding id itself
// unless it lies on a cycle. Unknown IDs yield an error.
func (t *Topology) Reachable(id string) ([]string, error) {
	if _, ok := t.order[id]; !ok {
		return nil, fmt.Errorf("node %s: %w", id, graph.ErrVertexNotFound)
	}
	seen := make(map[string]bool)
	for _, next := range t.Successors(id) {
		if seen[next] {
			continue
		}
		err := graph.BFS(t.g, next, func(v string) bool {
			seen[v] = true
			return false
		})
		if err != nil {
			return nil, err
		}
	}
	return t.filter(func(v string) bool { return seen[v] }), nil
}

// FlowOrder returns the nodes in topological flow order, breaking ties by
// declaration order. Cyclic diagrams have no such order; FlowOrder then
// returns declaration order and ok is false.
func (t *Topology) FlowOrder() (order []string, ok bool) {
	order, err := graph.StableTopologicalSort(t.g, t.less)
	if err != nil {
		return t.filter(func(string) bool { return true }), false
	}
	return order, true
}

func (t *Topology) less(a, b string) bool { return t.order[a] < t.order[b] }

func (t *Topology) sort(ids []string) {
	slices.SortFunc(ids, func(a, b string) int { return t.order[a] - t.order[b] })
}

// filter returns the node IDs matching keep, in declaration order.
func (t *Topology) filter(keep func(string) bool) []string {
	var out []string
	for _, n := range t.nodes {
		if keep(n.ID()) {
			out = append(out, n.ID())
		}
	}
	return out
}
