package io

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/doctran/archdiag/pkg/topology"
)

// WriteYAML encodes a topology report as YAML and writes it to w.
func WriteYAML(r topology.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
