package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/doctran/archdiag/pkg/diagram"
)

// Manifest is the structural description of one diagram.
type Manifest struct {
	Name      string            `json:"name"`
	Title     string            `json:"title,omitempty"`
	Direction string            `json:"direction"`
	GraphAttr map[string]string `json:"graph_attr,omitempty"`
	Clusters  []Cluster         `json:"clusters,omitempty"`
	Nodes     []Node            `json:"nodes"`
	Edges     []Edge            `json:"edges"`
}

// Cluster is a manifest cluster entry.
type Cluster struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`
}

// Node is a manifest node entry.
type Node struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Cluster string `json:"cluster,omitempty"`
}

// Edge is a manifest edge entry.
type Edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Reverse bool   `json:"reverse,omitempty"`
}

// NewManifest describes d. Clusters are listed depth-first in declaration
// order; nodes and edges in declaration order.
func NewManifest(d *diagram.Diagram) Manifest {
	m := Manifest{
		Name:      d.Name(),
		Title:     d.Title(),
		Direction: string(d.Direction()),
		Nodes:     make([]Node, 0, d.NodeCount()),
		Edges:     make([]Edge, 0, d.EdgeCount()),
	}
	if attrs := d.GraphAttr(); len(attrs) > 0 {
		m.GraphAttr = attrs
	}

	var walk func(cs []*diagram.Cluster)
	walk = func(cs []*diagram.Cluster) {
		for _, c := range cs {
			mc := Cluster{ID: c.ID(), Label: c.Label(), Depth: c.Depth()}
			if p := c.Parent(); p != nil {
				mc.Parent = p.ID()
			}
			m.Clusters = append(m.Clusters, mc)
			walk(c.Clusters())
		}
	}
	walk(d.Clusters())

	for _, n := range d.Nodes() {
		mn := Node{ID: n.ID(), Label: n.Label(), Kind: n.Kind().String()}
		if c := n.Cluster(); c != nil {
			mn.Cluster = c.ID()
		}
		m.Nodes = append(m.Nodes, mn)
	}
	for _, e := range d.Edges() {
		m.Edges = append(m.Edges, Edge{
			From:    e.From.ID(),
			To:      e.To.ID(),
			Reverse: e.Reverse,
		})
	}
	return m
}

// Validate checks the manifest's internal references.
func (m Manifest) Validate() error {
	if err := diagram.ValidateName(m.Name); err != nil {
		return err
	}
	clusters := make(map[string]bool, len(m.Clusters))
	for _, c := range m.Clusters {
		if clusters[c.ID] {
			return fmt.Errorf("cluster %s: duplicate id", c.ID)
		}
		if c.Parent != "" && !clusters[c.Parent] {
			return fmt.Errorf("cluster %s: unknown parent %s", c.ID, c.Parent)
		}
		clusters[c.ID] = true
	}
	nodes := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if nodes[n.ID] {
			return fmt.Errorf("node %s: duplicate id", n.ID)
		}
		if n.Cluster != "" && !clusters[n.Cluster] {
			return fmt.Errorf("node %s: %w: %s", n.ID, diagram.ErrForeignCluster, n.Cluster)
		}
		nodes[n.ID] = true
	}
	for _, e := range m.Edges {
		if !nodes[e.From] || !nodes[e.To] {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, diagram.ErrDanglingEdge)
		}
	}
	return nil
}

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the manifest of d to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *diagram.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(NewManifest(d), f)
}

// ReadJSON decodes a manifest from r and validates it.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// ImportJSON reads a manifest file at path.
func ImportJSON(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadJSON(f)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
