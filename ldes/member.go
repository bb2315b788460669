package ldes

import "github.com/geoknoesis/ldes-bench/rdf"

// Member is one versioned unit of the event stream: a small graph of quads
// that all share the member IRI as subject and as named graph.
type Member struct {
	// IRI identifies the member and names its graph.
	IRI rdf.IRI
	// Quads is the member payload in generation order.
	Quads []rdf.Quad
}

// TotalQuads returns the member payload quad count across all members.
// Structural quads (hypermedia, markers) are not part of any member.
func TotalQuads(members []Member) int {
	total := 0
	for _, m := range members {
		total += len(m.Quads)
	}
	return total
}
