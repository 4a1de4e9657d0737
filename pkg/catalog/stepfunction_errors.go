package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func stepfunctionErrors(d *diagram.Diagram) {
	d.Node(aws.SF, "Non successful state").
		To(d.Node(aws.Eventbridge, "Failure Event")).
		To(d.Node(aws.SF, "Mark as not Success"))
}
