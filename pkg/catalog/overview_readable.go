package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func overviewReadable(d *diagram.Diagram) {
	s := drawShared(d)
	drawHelp(d, s)

	var content, jobs, models, sfn, bedrock *diagram.Node
	d.Cluster("Simply Readable", func(c *diagram.Cluster) {
		content = c.Node(aws.S3, "Amazon S3 Bucket\n(Generated Images)")
		jobs = c.Node(aws.DDB, "Amazon DynamoDB\n(Job History)")
		models = c.Node(aws.DDB, "Amazon DynamoDB\n(Model Definitions)")
		sfn = c.Node(aws.SF, "AWS Step Functions\n(Low-code Workflows)")
		bedrock = c.Node(aws.SDK, "Amazon Bedrock\n(Generative AI)")
	})

	s.api.To(jobs).To(sfn)
	s.api.From(models).To(sfn)
	s.client.To(content).From(sfn)
	sfn.To(bedrock)
}
