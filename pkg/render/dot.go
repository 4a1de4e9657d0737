package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/doctran/archdiag/pkg/diagram"
)

// Options configures DOT transcription.
type Options struct {
	// GraphAttr is merged over the diagram's own graph attributes.
	GraphAttr diagram.Attrs
}

var (
	defaultGraphAttr = diagram.Attrs{
		"pad":       "2.0",
		"splines":   "ortho",
		"nodesep":   "0.60",
		"ranksep":   "0.75",
		"fontname":  "Sans-Serif",
		"fontsize":  "15",
		"fontcolor": "#2D3436",
	}
	defaultNodeAttr = diagram.Attrs{
		"shape":     "box",
		"style":     "rounded,filled",
		"fillcolor": "white",
		"fontname":  "Sans-Serif",
		"fontsize":  "13",
		"fontcolor": "#2D3436",
		"margin":    "0.3,0.15",
	}
	defaultEdgeAttr = diagram.Attrs{
		"color": "#7B8894",
	}
	defaultClusterAttr = diagram.Attrs{
		"shape":     "box",
		"style":     "rounded",
		"labeljust": "l",
		"pencolor":  "#AEB6BE",
		"fontname":  "Sans-Serif",
		"fontsize":  "12",
	}

	// clusterColors cycles with nesting depth.
	clusterColors = []string{"#E5F5FD", "#EBF3E7", "#ECE8F6", "#FDF7E3"}
)

// GraphAttr returns the effective graph attributes for d: the layout
// defaults, then title and direction, then d's attributes, then extra.
func GraphAttr(d *diagram.Diagram, extra diagram.Attrs) diagram.Attrs {
	attrs := defaultGraphAttr.Clone()
	attrs["rankdir"] = string(d.Direction())
	if t := d.Title(); t != "" {
		attrs["label"] = t
	}
	return attrs.Merge(d.GraphAttr()).Merge(extra)
}

// ToDOT converts a diagram to Graphviz DOT format.
// The result can be rendered with [RenderSVG], [RenderPNG], [RenderJPG] or
// [RenderPDF].
//
// Clusters become "cluster_N" subgraphs nested as declared. Reversed edges
// keep their endpoint order and are drawn with dir=back.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(d.Name()))
	fmt.Fprintf(&buf, "  graph%s;\n", attrList(GraphAttr(d, opts.GraphAttr)))
	fmt.Fprintf(&buf, "  node%s;\n", attrList(defaultNodeAttr))
	fmt.Fprintf(&buf, "  edge%s;\n", attrList(defaultEdgeAttr))

	for _, c := range d.Clusters() {
		buf.WriteString("\n")
		writeCluster(&buf, c, "  ")
	}

	var loose []*diagram.Node
	for _, n := range d.Nodes() {
		if n.Cluster() == nil {
			loose = append(loose, n)
		}
	}
	if len(loose) > 0 {
		buf.WriteString("\n")
	}
	for _, n := range loose {
		writeNode(&buf, n, "  ")
	}

	if edges := d.Edges(); len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			fmt.Fprintf(&buf, "  %s -> %s%s;\n", quote(e.From.ID()), quote(e.To.ID()), attrList(edgeAttr(e)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, c *diagram.Cluster, indent string) {
	fmt.Fprintf(buf, "%ssubgraph %s {\n", indent, quote(c.ID()))
	fmt.Fprintf(buf, "%s  graph%s;\n", indent, attrList(clusterAttr(c)))
	for _, n := range c.Nodes() {
		writeNode(buf, n, indent+"  ")
	}
	for _, child := range c.Clusters() {
		writeCluster(buf, child, indent+"  ")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func writeNode(buf *bytes.Buffer, n *diagram.Node, indent string) {
	fmt.Fprintf(buf, "%s%s%s;\n", indent, quote(n.ID()), attrList(nodeAttr(n)))
}

func clusterAttr(c *diagram.Cluster) diagram.Attrs {
	attrs := defaultClusterAttr.Clone()
	attrs["label"] = c.Label()
	attrs["bgcolor"] = clusterColors[c.Depth()%len(clusterColors)]
	return attrs
}

func nodeAttr(n *diagram.Node) diagram.Attrs {
	k := n.Kind()
	attrs := diagram.Attrs{"label": n.Label()}
	if !k.IsZero() {
		attrs["tooltip"] = k.String()
	}
	if k.Shape != "" && k.Shape != defaultNodeAttr["shape"] {
		attrs["shape"] = k.Shape
		attrs["style"] = "filled"
	}
	if k.FillColor != "" {
		attrs["fillcolor"] = k.FillColor
	}
	if k.FontColor != "" {
		attrs["fontcolor"] = k.FontColor
	}
	return attrs
}

func edgeAttr(e diagram.Edge) diagram.Attrs {
	attrs := diagram.Attrs{}
	if e.Reverse {
		attrs["dir"] = "back"
	}
	return attrs
}

// attrList formats attrs as a DOT attribute list with sorted keys,
// e.g. ` [color="red", label="a"]`. Empty attrs format as "".
func attrList(attrs diagram.Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	list := make([]string, 0, len(attrs))
	for _, k := range attrs.Keys() {
		list = append(list, k+"="+quote(attrs[k]))
	}
	return " [" + strings.Join(list, ", ") + "]"
}

var quoter = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
