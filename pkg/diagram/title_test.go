package diagram

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"stepfunction_errors", "Stepfunction errors"},
		{"macie_workflow", "Macie workflow"},
		{"Overview_READABLE", "Overview readable"},
		{"pipeline", "Pipeline"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"overview_client", "Overview Client"},
		{"overview_translation", "Overview Translation"},
		{"pipeline", "Pipeline"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAttrsMerge(t *testing.T) {
	base := Attrs{"margin": "0", "pad": "0"}
	merged := base.Merge(Attrs{"pad": "1", "splines": "ortho"})

	if merged["pad"] != "1" || merged["margin"] != "0" || merged["splines"] != "ortho" {
		t.Errorf("Merge() = %v", merged)
	}
	if base["pad"] != "0" {
		t.Error("Merge() should not modify the receiver")
	}
	keys := merged.Keys()
	if len(keys) != 3 || keys[0] != "margin" || keys[2] != "splines" {
		t.Errorf("Keys() = %v, want sorted keys", keys)
	}
	var nilAttrs Attrs
	if got := nilAttrs.Merge(Attrs{"a": "b"}); got["a"] != "b" {
		t.Errorf("nil Merge() = %v", got)
	}
}
