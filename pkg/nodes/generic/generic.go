// Package generic defines provider-neutral node kinds.
package generic

import "github.com/doctran/archdiag/pkg/diagram"

// Tablet is an end-user device.
var Tablet = diagram.Kind{
	Provider:  "generic",
	Category:  "device",
	Name:      "Tablet",
	Shape:     "box3d",
	FillColor: "#F5F5F5",
	FontColor: "#2D3436",
}

// All returns every generic kind.
func All() []diagram.Kind { return []diagram.Kind{Tablet} }
