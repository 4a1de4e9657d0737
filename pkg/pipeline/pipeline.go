// Package pipeline provides the build → transcribe → render pipeline for
// archdiag.
//
// The CLI and the preview server both go through a [Runner], so caching,
// logging and error wrapping behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: run a catalog entry's construction pass and validate the result
//  2. Transcribe: convert the sealed diagram to DOT (deterministic)
//  3. Render: produce each requested format, from the cache when possible
//
// [Runner.Write] then places the artifacts next to the documentation that
// embeds them.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	defer runner.Close()
//
//	opts := pipeline.Options{Formats: []string{"png", "svg"}, OutputDir: "."}
//	for _, e := range catalog.All() {
//	    res, err := runner.Execute(ctx, e, opts)
//	    // ...
//	}
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/errors"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJPG  = "jpg"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultFormat is the format rendered when none is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJPG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

var contentTypes = map[string]string{
	FormatPNG:  "image/png",
	FormatSVG:  "image/svg+xml",
	FormatJPG:  "image/jpeg",
	FormatPDF:  "application/pdf",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type of a format, or
// "application/octet-stream" for unknown formats.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// FormatNames returns the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates. Order is preserved.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Formats lists the output formats. Defaults to [DefaultFormat].
	Formats []string

	// OutputDir is the root the documentation directories live under.
	// Defaults to the current directory.
	OutputDir string

	// Flat writes every file directly into OutputDir instead of the
	// entry's documentation directory.
	Flat bool

	// GraphAttr is merged over every diagram's graph attributes.
	GraphAttr diagram.Attrs

	// Refresh bypasses cache reads; fresh renders are still stored.
	Refresh bool

	// TTL is how long rendered artifacts stay cached.
	TTL time.Duration

	// Logger receives progress output. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	if o.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative: %s", o.TTL)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of rendering one diagram.
type Result struct {
	// Name is the diagram base name.
	Name string

	// Diagram is the sealed diagram.
	Diagram *diagram.Diagram

	// DOT is the Graphviz transcription the artifacts were rendered from.
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths lists the written files, in format order. Empty until
	// [Runner.Write] runs.
	Paths []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	ClusterCount int
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits   []string
	Misses []string
}

// AllHit reports whether every format came from the cache.
func (c CacheInfo) AllHit() bool { return len(c.Misses) == 0 && len(c.Hits) > 0 }
