// Package aws defines node kinds for Amazon Web Services.
package aws

import "github.com/doctran/archdiag/pkg/diagram"

// Category fill colors, after the AWS architecture icon palette.
const (
	colorIntegration = "#E7157B"
	colorStorage     = "#3F8624"
	colorML          = "#01A88D"
	colorCompute     = "#ED7100"
	colorSecurity    = "#DD344C"
	colorManagement  = "#E7157B"
	colorDatabase    = "#C925D1"
	colorNetwork     = "#8C4FFF"
	colorGeneral     = "#232F3E"
	colorDevtools    = "#3B48CC"
)

func kind(category, name, fill string) diagram.Kind {
	return diagram.Kind{
		Provider:  "aws",
		Category:  category,
		Name:      name,
		Shape:     "box",
		FillColor: fill,
		FontColor: "white",
	}
}

// Application integration.
var (
	SF          = kind("integration", "SF", colorIntegration)
	Eventbridge = kind("integration", "Eventbridge", colorIntegration)
)

// Storage.
var S3 = kind("storage", "S3", colorStorage)

// Machine learning.
var Translate = kind("ml", "Translate", colorML)

// Compute.
var Lambda = kind("compute", "Lambda", colorCompute)

// Security, identity and compliance.
var (
	Macie   = kind("security", "Macie", colorSecurity)
	Cognito = kind("security", "Cognito", colorSecurity)
	WAF     = kind("security", "WAF", colorSecurity)
)

// Management and governance.
var (
	Cloudwatch     = kind("management", "Cloudwatch", colorManagement)
	Cloudformation = kind("management", "Cloudformation", colorManagement)
)

// Front-end web and mobile.
var Appsync = kind("mobile", "Appsync", colorIntegration)

// Database.
var (
	DDB           = kind("database", "DDB", colorDatabase)
	DynamodbTable = kind("database", "DynamodbTable", colorDatabase)
)

// Networking and content delivery.
var CloudFront = kind("network", "CloudFront", colorNetwork)

// General resources. Client is drawn as a plain rectangle.
var (
	Client = diagram.Kind{
		Provider:  "aws",
		Category:  "general",
		Name:      "Client",
		Shape:     "rect",
		FillColor: "white",
		FontColor: colorGeneral,
	}
	SDK = kind("general", "SDK", colorGeneral)
)

// Developer tools.
var (
	Codecommit          = kind("devtools", "Codecommit", colorDevtools)
	Codebuild           = kind("devtools", "Codebuild", colorDevtools)
	CloudDevelopmentKit = kind("devtools", "CloudDevelopmentKit", colorDevtools)
)

// All returns every AWS kind.
func All() []diagram.Kind {
	return []diagram.Kind{
		SF, Eventbridge, S3, Translate, Lambda,
		Macie, Cognito, WAF, Cloudwatch, Cloudformation,
		Appsync, DDB, DynamodbTable, CloudFront, Client, SDK,
		Codecommit, Codebuild, CloudDevelopmentKit,
	}
}
