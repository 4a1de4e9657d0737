package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
	"github.com/doctran/archdiag/pkg/nodes/generic"
)

func webClient(d *diagram.Diagram) {
	client := d.Node(generic.Tablet, "Client")

	cache := d.Node(aws.CloudFront, "Amazon CloudFront\n\n(Content Delivery Network)")
	hosting := d.Node(aws.S3, "Amazon Simple\nStorage Service\n\n(Static Website)")
	waf := d.Node(aws.WAF, "AWS Web\nApplication Firewall\n\n(Firewall)")
	api := d.Node(aws.Appsync, "AWS AppSync\n\n(GraphQL API)")
	auth := d.Node(aws.Cognito, "AWS Cognito\n\n(Authentication)")

	waf.To(api)

	client.From(cache)
	cache.From(hosting)

	client.To(waf)

	client.To(auth)
}
