package diagram_test

import (
	"fmt"

	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/nodes/aws"
)

func ExampleDraw() {
	d, err := diagram.Draw("stepfunction_errors", func(d *diagram.Diagram) {
		d.Node(aws.SF, "Non successful state").
			To(d.Node(aws.Eventbridge, "Failure Event")).
			To(d.Node(aws.SF, "Mark as not Success"))
	}, diagram.WithTitle(diagram.Capitalize("stepfunction_errors")))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Title:", d.Title())
	fmt.Println("Nodes:", d.NodeCount())
	fmt.Println("Edges:", d.EdgeCount())
	fmt.Println("File:", d.Filename("png"))
	// Output:
	// Title: Stepfunction errors
	// Nodes: 3
	// Edges: 2
	// File: stepfunction_errors.png
}

func ExampleCluster() {
	d, _ := diagram.Draw("web_hosting", func(d *diagram.Diagram) {
		client := d.Node(aws.Client, "Client")
		d.Cluster("Web hosting", func(c *diagram.Cluster) {
			cache := c.Node(aws.CloudFront, "Cache")
			hosting := c.Node(aws.S3, "Static Web")
			cache.From(hosting)
			client.From(cache)
		})
	})

	for _, e := range d.Edges() {
		fmt.Println(e.From.Label(), "<-", e.To.Label())
	}
	fmt.Println("Clusters:", d.ClusterCount())
	// Output:
	// Cache <- Static Web
	// Client <- Cache
	// Clusters: 1
}
