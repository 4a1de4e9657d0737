package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
	"github.com/doctran/archdiag/pkg/nodes/azure"
)

// sharedNodes are the parts of the application every feature overview
// starts from: client, auth, API and web hosting.
type sharedNodes struct {
	client     *diagram.Node
	auth       *diagram.Node
	identity   *diagram.Node
	apiWAF     *diagram.Node
	api        *diagram.Node
	webCache   *diagram.Node
	webHosting *diagram.Node
}

func drawShared(d *diagram.Diagram) sharedNodes {
	var s sharedNodes
	d.Cluster("Shared", func(c *diagram.Cluster) {
		s.client = c.Node(aws.Client, "Client\n(AmplifyJS,\nCloudscape,\n& React)")
		c.Cluster("Auth", func(c *diagram.Cluster) {
			s.auth = c.Node(aws.Cognito, "Amazon Cognito\n(User Auth)")
			s.identity = c.Node(azure.ActiveDirectory, "Identity Provider\n(Azure AD/SAML 2.0)")
		})
		c.Cluster("API", func(c *diagram.Cluster) {
			s.apiWAF = c.Node(aws.WAF, "AWS WAF\n(Firewall)")
			s.api = c.Node(aws.Appsync, "AWS AppSync\n(GraphQL API)")
		})
		c.Cluster("Web hosting", func(c *diagram.Cluster) {
			s.webCache = c.Node(aws.CloudFront, "Amazon CloudFront\n(Web Cache))")
			s.webHosting = c.Node(aws.S3, "Amazon S3 Bucket\n(Static Web)")
		})
	})

	// web hosting
	s.webCache.From(s.webHosting)
	s.client.From(s.webCache)
	// api
	s.apiWAF.To(s.api)
	s.client.To(s.apiWAF)
	// auth
	s.client.To(s.auth).To(s.identity)

	return s
}

func drawHelp(d *diagram.Diagram, s sharedNodes) {
	var helpDB *diagram.Node
	d.Cluster("Help Info", func(c *diagram.Cluster) {
		helpDB = c.Node(aws.DDB, "Amazon DynamoDB\n(Help Info)")
	})
	s.api.To(helpDB)
}
