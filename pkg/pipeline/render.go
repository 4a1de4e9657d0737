package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/doctran/archdiag/pkg/diagram"
	pkgio "github.com/doctran/archdiag/pkg/io"
	"github.com/doctran/archdiag/pkg/render"
)

// Cacheable reports whether artifacts of this format go through the cache.
// DOT and JSON are derived from the diagram directly and cost nothing.
func Cacheable(format string) bool {
	return format != FormatDOT && format != FormatJSON
}

// RenderFormat produces one artifact of d from its DOT transcription,
// bypassing the cache.
func RenderFormat(ctx context.Context, d *diagram.Diagram, dot, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return render.RenderPNG(ctx, dot)
	case FormatSVG:
		return render.RenderSVG(ctx, dot)
	case FormatJPG:
		return render.RenderJPG(ctx, dot)
	case FormatPDF:
		return render.RenderPDF(ctx, dot)
	case FormatDOT:
		return []byte(dot), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(pkgio.NewManifest(d), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
