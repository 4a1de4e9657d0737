// Package nodes groups the node kinds used by the documentation diagrams.
//
// Kinds live in one subpackage per provider so that diagram definitions read
// like the services they draw:
//
//	d.Node(aws.S3, "Content")
//	d.Node(azure.ActiveDirectory, "Identity Provider")
//	d.Node(generic.Tablet, "Client")
//
// Each kind carries the shape and colors that stand in for a service icon.
// [All] lists every kind for catalog-wide checks.
package nodes

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
	"github.com/doctran/archdiag/pkg/nodes/azure"
	"github.com/doctran/archdiag/pkg/nodes/generic"
)

// All returns every known kind, grouped by provider.
func All() []diagram.Kind {
	var out []diagram.Kind
	out = append(out, aws.All()...)
	out = append(out, azure.All()...)
	out = append(out, generic.All()...)
	return out
}
