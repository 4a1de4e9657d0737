package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func macieWorkflow(d *diagram.Diagram) {
	sfMain := d.Node(aws.SF, "Pii")
	sfCallbackSend := d.Node(aws.SF, "Callback")
	macie := d.Node(aws.Macie, "PII Detection")
	parseMacieResult := d.Node(aws.Lambda, "Parse Macie Result")

	sfMain.To(macie)

	macie.
		To(d.Node(aws.Cloudwatch, "Job Complete Log Subscription")).
		To(parseMacieResult).
		To(sfCallbackSend)
}
