package catalog

import (
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func pipeline(d *diagram.Diagram) {
	var commit, build, cdk *diagram.Node
	d.Cluster("AWS CodePipeline", func(c *diagram.Cluster) {
		commit = c.Node(aws.Codecommit, "AWS CodeCommit\n(Git Repo)")
		build = c.Node(aws.Codebuild, "AWS CodeBuild\n(CI)")
		cdk = c.Node(aws.CloudDevelopmentKit, "AWS Cloud Development Kit \n(IaC)")
	})

	commit.To(build).To(cdk)

	cfn := d.Node(aws.Cloudformation, "AWS CloudFormation\n(App Stack)")
	cdk.To(cfn)
}
