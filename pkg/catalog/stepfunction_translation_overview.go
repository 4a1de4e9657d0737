package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func stepfunctionTranslationOverview(d *diagram.Diagram) {
	sfMain := d.Node(aws.SF, "Main")
	sfTranslate := d.Node(aws.SF, "Translate")
	sfPii := d.Node(aws.SF, "Pii")
	sfTag := d.Node(aws.SF, "Tag")

	jobs := d.Node(aws.DDB, "Jobs")

	d.Node(aws.DynamodbTable, "Table Stream").To(sfMain)

	sfMain.To(sfTranslate)
	sfMain.To(sfPii)
	sfMain.To(sfTag)
	sfMain.To(jobs)
}
