// Package catalog holds the documentation diagrams, one build function per
// diagram, registered under the base name of the file it renders to.
//
// Every entry is a fixed, hand-authored literal: building it takes no input
// and always yields the same graph.
//
//	e, err := catalog.Lookup("pipeline")
//	d, err := e.Build()
package catalog

import (
	"slices"
	"strings"

	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/errors"
)

// Documentation directories the diagrams are written to.
const (
	DirGraphs         = "docs/graphs"
	DirAssetsGraphs   = "docs/assets/graphs"
	DirStaticGraphs   = "docs/static/graphs"
	DirStaticDiagrams = "docs/static/diagrams"
)

// sharedGraphAttr is the layout shared by most documentation diagrams.
var sharedGraphAttr = diagram.Attrs{
	"margin": "0",
	"pad":    "0.5",
}

// flushGraphAttr drops all whitespace around the graph, for diagrams
// embedded inline on the documentation site.
var flushGraphAttr = diagram.Attrs{
	"margin": "0",
	"pad":    "0",
}

// Entry is one documentation diagram.
type Entry struct {
	Name  string // output base name, e.g. "stepfunction_errors"
	Dir   string // documentation directory, relative to the output root
	build func(d *diagram.Diagram)
	opts  []diagram.Option
}

// Build runs the entry's construction pass and returns the sealed diagram.
func (e Entry) Build() (*diagram.Diagram, error) {
	return diagram.Draw(e.Name, e.build, e.opts...)
}

// Path returns the output path of the entry relative to the output root,
// without extension.
func (e Entry) Path() string {
	return e.Dir + "/" + e.Name
}

var entries = []Entry{
	{
		Name:  "stepfunction_errors",
		Dir:   DirGraphs,
		build: stepfunctionErrors,
		opts:  capitalized("stepfunction_errors", sharedGraphAttr),
	},
	{
		Name:  "translate_workflow",
		Dir:   DirGraphs,
		build: translateWorkflow,
		opts:  capitalized("translate_workflow", sharedGraphAttr),
	},
	{
		Name:  "macie_workflow",
		Dir:   DirGraphs,
		build: macieWorkflow,
		opts:  capitalized("macie_workflow", sharedGraphAttr),
	},
	{
		Name:  "client_interaction",
		Dir:   DirAssetsGraphs,
		build: clientInteraction,
		opts:  capitalized("client_interaction", sharedGraphAttr),
	},
	{
		Name:  "stepfunction_translation_overview",
		Dir:   DirAssetsGraphs,
		build: stepfunctionTranslationOverview,
		opts:  capitalized("stepfunction_translation_overview", sharedGraphAttr),
	},
	{
		Name:  "web_client",
		Dir:   DirStaticGraphs,
		build: webClient,
		opts:  []diagram.Option{diagram.WithGraphAttr(flushGraphAttr)},
	},
	{
		Name:  "overview_readable",
		Dir:   DirStaticDiagrams,
		build: overviewReadable,
		opts:  capitalized("overview_readable", sharedGraphAttr),
	},
	{
		Name:  "stepfunction_translate_overview",
		Dir:   DirStaticDiagrams,
		build: stepfunctionTranslateOverview,
		opts:  capitalized("stepfunction_translate_overview", sharedGraphAttr),
	},
	{
		Name:  "overview_client",
		Dir:   DirStaticDiagrams,
		build: overviewClient,
		opts:  titled("overview_client", flushGraphAttr),
	},
	{
		Name:  "overview_translation",
		Dir:   DirStaticDiagrams,
		build: overviewTranslation,
		opts:  titled("overview_translation", sharedGraphAttr),
	},
	{
		Name:  "pipeline",
		Dir:   DirStaticDiagrams,
		build: pipeline,
		opts:  titled("pipeline", flushGraphAttr),
	},
}

func capitalized(name string, attrs diagram.Attrs) []diagram.Option {
	return []diagram.Option{
		diagram.WithTitle(diagram.Capitalize(name)),
		diagram.WithGraphAttr(attrs),
	}
}

func titled(name string, attrs diagram.Attrs) []diagram.Option {
	return []diagram.Option{
		diagram.WithTitle(diagram.TitleCase(name)),
		diagram.WithGraphAttr(attrs),
	}
}

// All returns every entry sorted by name.
func All() []Entry {
	out := slices.Clone(entries)
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the entry names sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry with the given name. Unknown names yield an
// error with code [errors.ErrCodeNotFound].
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, errors.New(errors.ErrCodeNotFound, "unknown diagram: %s", name)
}
