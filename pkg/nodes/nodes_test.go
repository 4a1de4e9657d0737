package nodes

import "testing"

func TestAllKindsDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range All() {
		if k.IsZero() {
			t.Error("All() contains a zero kind")
			continue
		}
		if k.Provider == "" || k.Category == "" || k.Name == "" {
			t.Errorf("kind %q is missing a path segment", k)
		}
		if k.Shape == "" || k.FillColor == "" {
			t.Errorf("kind %q has no shape or fill color", k)
		}
		if seen[k.String()] {
			t.Errorf("kind %q listed twice", k)
		}
		seen[k.String()] = true
	}
	if len(seen) != 21 {
		t.Errorf("got %d kinds, want 21", len(seen))
	}
}
