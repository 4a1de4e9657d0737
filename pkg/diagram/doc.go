// Package diagram provides the graph-description model for architecture
// diagrams: labeled nodes, nested clusters and directed edges collected in a
// single scoped construction pass.
//
// # Overview
//
// A [Diagram] is the root container. It holds the global rendering attributes
// (graph_attr such as margin and pad), the layout direction, an optional
// title and the output base name. Nodes are created through the diagram or
// one of its clusters and are connected with [Node.To] and [Node.From]:
//
//	d, err := diagram.Draw("stepfunction_errors", func(d *diagram.Diagram) {
//	    d.Node(aws.SF, "Non successful state").
//	        To(d.Node(aws.Eventbridge, "Failure Event")).
//	        To(d.Node(aws.SF, "Mark as not Success"))
//	}, diagram.WithTitle(diagram.Capitalize("stepfunction_errors")))
//
// # Construction Pass
//
// [Draw] opens the scope, runs the build function and seals the diagram when
// the function returns. Structure is append-only while the scope is open and
// frozen afterwards: any mutation on a sealed diagram is recorded as
// [ErrSealed]. Errors are recorded rather than returned per call so edges can
// be chained; [Draw] returns them joined.
//
// # Edges
//
// [Node.To] adds the edge receiver -> other and returns other, so calls chain
// left to right. [Node.From] adds the same edge but drawn backwards (the arrow
// points at the receiver) and also returns other. Edges are never
// deduplicated and cycles are allowed.
//
// # Determinism
//
// Node IDs are assigned in declaration order ("n1", "n2", ...) and cluster IDs
// likewise ("cluster_1", ...), so building the same diagram twice yields the
// same structure byte for byte once transcribed.
package diagram
