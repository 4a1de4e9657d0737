// Package azure defines node kinds for Microsoft Azure.
package azure

import "github.com/doctran/archdiag/pkg/diagram"

// ActiveDirectory is an identity provider (Azure AD, SAML 2.0).
var ActiveDirectory = diagram.Kind{
	Provider:  "azure",
	Category:  "identity",
	Name:      "ActiveDirectory",
	Shape:     "box",
	FillColor: "#0078D4",
	FontColor: "white",
}

// All returns every Azure kind.
func All() []diagram.Kind { return []diagram.Kind{ActiveDirectory} }
