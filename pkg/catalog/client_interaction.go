package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
	"github.com/doctran/archdiag/pkg/nodes/generic"
)

func clientInteraction(d *diagram.Diagram) {
	client := d.Node(generic.Tablet, "Amplify React client")

	var cache, hosting *diagram.Node
	d.Cluster("Web hosting", func(c *diagram.Cluster) {
		cache = c.Node(aws.CloudFront, "CloudFront Cache")
		hosting = c.Node(aws.S3, "Static Web")
	})
	content := d.Node(aws.S3, "User Content")
	waf := d.Node(aws.WAF, "WAF")
	api := d.Node(aws.Appsync, "GraphQL API")
	auth := d.Node(aws.Cognito, "Cognito auth")
	jobs := d.Node(aws.DDB, "Jobs")

	waf.To(api)
	api.To(jobs)

	client.To(cache)
	cache.To(hosting)
	client.To(content)
	client.To(waf)
	client.To(auth)
}
