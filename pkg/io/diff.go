package io

import (
	"fmt"
	"maps"
)

// Diff lists the differences between a committed manifest and a rebuilt
// one, each as a short human-readable line. Equal manifests yield nil.
func Diff(want, got Manifest) []string {
	var out []string
	field := func(name, w, g string) {
		if w != g {
			out = append(out, fmt.Sprintf("%s: %q, now %q", name, w, g))
		}
	}
	field("name", want.Name, got.Name)
	field("title", want.Title, got.Title)
	field("direction", want.Direction, got.Direction)
	if !maps.Equal(want.GraphAttr, got.GraphAttr) {
		out = append(out, fmt.Sprintf("graph_attr: %v, now %v", want.GraphAttr, got.GraphAttr))
	}

	out = append(out, diffList("cluster", want.Clusters, got.Clusters)...)
	out = append(out, diffList("node", want.Nodes, got.Nodes)...)
	out = append(out, diffList("edge", want.Edges, got.Edges)...)
	return out
}

func diffList[T comparable](kind string, want, got []T) []string {
	var out []string
	for i := range max(len(want), len(got)) {
		switch {
		case i >= len(got):
			out = append(out, fmt.Sprintf("%s %d: removed %+v", kind, i+1, want[i]))
		case i >= len(want):
			out = append(out, fmt.Sprintf("%s %d: added %+v", kind, i+1, got[i]))
		case want[i] != got[i]:
			out = append(out, fmt.Sprintf("%s %d: %+v, now %+v", kind, i+1, want[i], got[i]))
		}
	}
	return out
}
