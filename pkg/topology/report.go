package topology

import "github.com/doctran/archdiag/pkg/diagram"

// NodeReport describes one node of a [Report].
type NodeReport struct {
	ID         string   `json:"id" yaml:"id"`
	Label      string   `json:"label" yaml:"label"`
	Kind       string   `json:"kind" yaml:"kind"`
	Cluster    []string `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Successors []string `json:"successors,omitempty" yaml:"successors,omitempty"`
	Downstream []string `json:"downstream,omitempty" yaml:"downstream,omitempty"`
}

// Report is a serializable summary of a diagram's flow graph.
type Report struct {
	Diagram   string       `json:"diagram" yaml:"diagram"`
	Nodes     []NodeReport `json:"nodes" yaml:"nodes"`
	Sources   []string     `json:"sources" yaml:"sources"`
	Sinks     []string     `json:"sinks" yaml:"sinks"`
	FlowOrder []string     `json:"flow_order" yaml:"flow_order"`
	Cyclic    bool         `json:"cyclic,omitempty" yaml:"cyclic,omitempty"`
}

// Report summarizes t for d, the diagram it was built from.
func (t *Topology) Report(d *diagram.Diagram) Report {
	order, ok := t.FlowOrder()
	r := Report{
		Diagram:   d.Name(),
		Nodes:     make([]NodeReport, 0, len(t.nodes)),
		Sources:   t.Sources(),
		Sinks:     t.Sinks(),
		FlowOrder: order,
		Cyclic:    !ok,
	}
	for _, n := range t.nodes {
		nr := NodeReport{
			ID:         n.ID(),
			Label:      n.Label(),
			Kind:       n.Kind().String(),
			Successors: t.Successors(n.ID()),
		}
		if reach, err := t.Reachable(n.ID()); err == nil {
			nr.Downstream = reach
		}
		if c := n.Cluster(); c != nil {
			nr.Cluster = c.Path()
		}
		r.Nodes = append(r.Nodes, nr)
	}
	return r
}
