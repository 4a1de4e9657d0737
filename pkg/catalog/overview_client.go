package catalog

import "github.com/doctran/archdiag/pkg/diagram"

func overviewClient(d *diagram.Diagram) {
	s := drawShared(d)
	drawHelp(d, s)
}
