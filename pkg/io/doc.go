// Package io provides structural exports of diagrams.
//
// # Overview
//
// Two formats are supported:
//
//   - A JSON manifest of a single diagram ([Manifest]): nodes, clusters and
//     edges with their IDs, labels and kinds. The manifest is the
//     "structural" view of a diagram, used for determinism checks,
//     documentation tooling and the "json" output format.
//   - A YAML topology report ([WriteYAML]): the data-flow summary produced
//     by [topology.Topology.Report], used by "archdiag inspect --format yaml".
//
// # JSON Format
//
//	{
//	  "name": "pipeline",
//	  "title": "Pipeline",
//	  "direction": "LR",
//	  "graph_attr": {"margin": "0", "pad": "0"},
//	  "clusters": [
//	    {"id": "cluster_1", "label": "AWS CodePipeline", "depth": 0}
//	  ],
//	  "nodes": [
//	    {"id": "n1", "label": "AWS CodeCommit\n(Git Repo)", "kind": "aws.devtools.Codecommit", "cluster": "cluster_1"}
//	  ],
//	  "edges": [
//	    {"from": "n1", "to": "n2"}
//	  ]
//	}
//
// Building the same diagram twice yields a byte-identical manifest.
//
// # Import
//
// [ReadJSON] decodes a manifest and checks it with [Manifest.Validate]:
// unique node and cluster IDs, and every edge endpoint and cluster
// reference declared.
//
// [topology.Topology.Report]: github.com/doctran/archdiag/pkg/topology.Topology.Report
package io
