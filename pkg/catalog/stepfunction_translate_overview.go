package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func stepfunctionTranslateOverview(d *diagram.Diagram) {
	sfMain := d.Node(aws.SF, "Main")
	sfTranslate := d.Node(aws.SF, "Translate")
	translate := d.Node(aws.Translate, "Amazon Translate")

	jobs := d.Node(aws.DDB, "Jobs")
	content := d.Node(aws.S3, "Content")

	d.Node(aws.DynamodbTable, "Table Stream").To(sfMain)

	sfMain.To(sfTranslate)
	sfTranslate.To(translate)
	sfTranslate.To(jobs)
	sfTranslate.To(content)
}
