package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func overviewTranslation(d *diagram.Diagram) {
	s := drawShared(d)
	drawHelp(d, s)

	var content, jobs, sfn, translate, macie *diagram.Node
	d.Cluster("Document Translation", func(c *diagram.Cluster) {
		content = c.Node(aws.S3, "Amazon S3 Bucket\n(User Documents)")
		jobs = c.Node(aws.DDB, "Amazon DynamoDB\n(Job History)")
		sfn = c.Node(aws.SF, "AWS Step Functions\n(Low-code Workflows)")
		translate = c.Node(aws.Translate, "Amazon Translate\n(Translation)")
		macie = c.Node(aws.Macie, "Amazon Macie\n(PII Detection)")
	})

	s.api.To(jobs).To(sfn)
	s.client.To(content).From(sfn)
	sfn.To(macie)
	sfn.To(translate)
}
