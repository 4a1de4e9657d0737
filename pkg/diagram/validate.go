package diagram

import (
	"fmt"
	"regexp"
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateName reports whether name can be used as an output base name:
// non-empty, no path separators, no dots and therefore no traversal.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Validate checks the structural invariants of the diagram. The name must be
// valid and construction must have recorded no errors. Every edge endpoint
// must be a node declared before the edge and every cluster must belong to
// this diagram.
func (d *Diagram) Validate() error {
	if err := ValidateName(d.name); err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return err
	}

	declared := make(map[*Node]int, len(d.nodes))
	for i, n := range d.nodes {
		declared[n] = i
		if n.cluster != nil && n.cluster.diagram != d {
			return fmt.Errorf("node %s: %w", n.id, ErrForeignCluster)
		}
	}
	for _, e := range d.edges {
		for _, n := range []*Node{e.From, e.To} {
			if i, ok := declared[n]; !ok || i >= e.seq {
				return fmt.Errorf("edge %s: %w", e, ErrDanglingEdge)
			}
		}
	}
	return nil
}
