// Package render turns diagrams into images.
//
// # Overview
//
// Rendering happens in two steps. [ToDOT] transcribes a sealed
// [diagram.Diagram] into Graphviz DOT text; the render functions then lay
// the DOT out with Graphviz and encode it:
//
//	dot := render.ToDOT(d, render.Options{})
//	png, err := render.RenderPNG(ctx, dot)
//	svg, err := render.RenderSVG(ctx, dot)
//	pdf, err := render.RenderPDF(ctx, dot) // via rsvg-convert
//
// # Determinism
//
// The DOT transcription depends only on the diagram: node and cluster IDs
// come from declaration order and attribute lists are written with sorted
// keys, so the same diagram always yields byte-identical DOT. Callers use the
// DOT text as a cache key for the rendered bytes.
//
// # Layout defaults
//
// Graph, node, edge and cluster defaults follow the look of the drawing
// library the diagrams were first written for: left-to-right layout,
// orthogonal splines, a 2.0 pad and pastel cluster backgrounds that cycle
// with nesting depth. Diagram graph attributes and [Options.GraphAttr]
// override the defaults, in that order.
//
// # Format Conversion
//
// PNG, SVG and JPG come straight from the embedded Graphviz (WebAssembly
// build, no system install needed). [ToPDF] converts SVG with the external
// rsvg-convert tool from librsvg.
//
// [diagram.Diagram]: github.com/doctran/archdiag/pkg/diagram.Diagram
package render
