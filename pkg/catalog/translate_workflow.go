package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func translateWorkflow(d *diagram.Diagram) {
	sfTranslate := d.Node(aws.SF, "Translate")
	sfCallbackSend := d.Node(aws.SF, "Callback")
	translate := d.Node(aws.Translate, "Document Translation")
	passS3EventToStepFunction := d.Node(aws.Lambda, "Pass S3 Event to StepFunction")
	content := d.Node(aws.S3, "Content")

	sfTranslate.To(translate)

	translate.To(content).To(passS3EventToStepFunction).To(sfCallbackSend)
}
