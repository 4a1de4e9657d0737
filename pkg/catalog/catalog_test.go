package catalog

import (
	"reflect"
	"slices"
	"testing"

	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/errors"
)

func TestCatalogCounts(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		title    string
		nodes    int
		edges    int
		clusters int
		reversed int
	}{
		{"stepfunction_errors", DirGraphs, "Stepfunction errors", 3, 2, 0, 0},
		{"translate_workflow", DirGraphs, "Translate workflow", 5, 4, 0, 0},
		{"macie_workflow", DirGraphs, "Macie workflow", 5, 4, 0, 0},
		{"client_interaction", DirAssetsGraphs, "Client interaction", 8, 7, 1, 0},
		{"stepfunction_translation_overview", DirAssetsGraphs, "Stepfunction translation overview", 6, 5, 0, 0},
		{"web_client", DirStaticGraphs, "", 6, 5, 0, 2},
		{"overview_readable", DirStaticDiagrams, "Overview readable", 13, 14, 6, 4},
		{"stepfunction_translate_overview", DirStaticDiagrams, "Stepfunction translate overview", 6, 5, 0, 0},
		{"overview_client", DirStaticDiagrams, "Overview Client", 8, 7, 5, 2},
		{"overview_translation", DirStaticDiagrams, "Overview Translation", 13, 13, 6, 3},
		{"pipeline", DirStaticDiagrams, "Pipeline", 4, 3, 1, 0},
	}

	if len(tests) != len(All()) {
		t.Fatalf("catalog has %d entries, test table has %d", len(All()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if e.Dir != tt.dir {
				t.Errorf("Dir = %q, want %q", e.Dir, tt.dir)
			}

			d, err := e.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if d.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", d.Name(), tt.name)
			}
			if d.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", d.Title(), tt.title)
			}
			if d.NodeCount() != tt.nodes {
				t.Errorf("NodeCount() = %d, want %d", d.NodeCount(), tt.nodes)
			}
			if d.EdgeCount() != tt.edges {
				t.Errorf("EdgeCount() = %d, want %d", d.EdgeCount(), tt.edges)
			}
			if d.ClusterCount() != tt.clusters {
				t.Errorf("ClusterCount() = %d, want %d", d.ClusterCount(), tt.clusters)
			}

			reversed := 0
			for _, edge := range d.Edges() {
				if edge.Reverse {
					reversed++
				}
			}
			if reversed != tt.reversed {
				t.Errorf("reversed edges = %d, want %d", reversed, tt.reversed)
			}
		})
	}
}

func TestCatalogDeterministic(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			first, err := e.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			second, err := e.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !reflect.DeepEqual(shape(first), shape(second)) {
				t.Error("two builds produced different graphs")
			}
			if first == second {
				t.Error("each build should produce a fresh diagram")
			}
		})
	}
}

// shape flattens a diagram into comparable strings.
func shape(d *diagram.Diagram) []string {
	var out []string
	for _, n := range d.Nodes() {
		cluster := ""
		if n.Cluster() != nil {
			cluster = n.Cluster().ID()
		}
		out = append(out, n.ID()+"|"+n.Kind().String()+"|"+n.Label()+"|"+cluster)
	}
	for _, e := range d.Edges() {
		out = append(out, e.String())
	}
	return out
}

func TestEdgeEndpointsDeclaredEarlier(t *testing.T) {
	for _, e := range All() {
		d, err := e.Build()
		if err != nil {
			t.Fatalf("%s: Build() error = %v", e.Name, err)
		}
		pos := make(map[*diagram.Node]int)
		for i, n := range d.Nodes() {
			pos[n] = i
		}
		for _, edge := range d.Edges() {
			for _, n := range []*diagram.Node{edge.From, edge.To} {
				i, ok := pos[n]
				if !ok {
					t.Errorf("%s: edge %s has an undeclared endpoint", e.Name, edge)
					continue
				}
				if i >= edge.NodesBefore() {
					t.Errorf("%s: edge %s declared before endpoint %s", e.Name, edge, n.ID())
				}
			}
		}
	}
}

func TestNamesAreFileBaseNames(t *testing.T) {
	for _, name := range Names() {
		if err := diagram.ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v", name, err)
		}
	}
}

func TestAllSortedAndUnique(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Errorf("Names() has duplicates: %v", names)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("does_not_exist")
	if err == nil {
		t.Fatal("Lookup() should fail for unknown names")
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Lookup() error code = %q, want %q", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}

func TestEntryPath(t *testing.T) {
	e, _ := Lookup("pipeline")
	if got := e.Path(); got != "docs/static/diagrams/pipeline" {
		t.Errorf("Path() = %q", got)
	}
}

func TestGraphAttrs(t *testing.T) {
	flush := []string{"web_client", "overview_client", "pipeline"}
	for _, e := range All() {
		d, _ := e.Build()
		attrs := d.GraphAttr()
		wantPad := sharedGraphAttr["pad"]
		if slices.Contains(flush, e.Name) {
			wantPad = "0"
		}
		if attrs["pad"] != wantPad {
			t.Errorf("%s: pad = %q, want %q", e.Name, attrs["pad"], wantPad)
		}
		if attrs["margin"] != "0" {
			t.Errorf("%s: margin = %q, want 0", e.Name, attrs["margin"])
		}
	}
}
