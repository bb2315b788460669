package ldes

import (
	"fmt"
	"io"

	"github.com/geoknoesis/ldes-bench/rdf"
)

// PageReader streams member bundles from a TREE-profile page in document
// order. A tree:member marker starts a bundle; subsequent quads belong to it
// until the next marker or end of input. Quads before the first marker (the
// hypermedia block) are skipped.
type PageReader struct {
	dec     rdf.Decoder
	pending *Member
	err     error
}

// NewPageReader returns a reader over an uncompressed N-Quads page.
func NewPageReader(r io.Reader) *PageReader {
	return &PageReader{dec: rdf.NewQuadDecoder(r)}
}

// Next returns the next member bundle, or io.EOF after the last one.
// A malformed page aborts with the decoder's error; no partial bundle is
// returned in that case.
func (pr *PageReader) Next() (Member, error) {
	if pr.err != nil {
		return Member{}, pr.err
	}
	current := pr.pending
	pr.pending = nil
	for {
		quad, err := pr.dec.Next()
		if err == io.EOF {
			pr.err = io.EOF
			if current != nil {
				return *current, nil
			}
			return Member{}, io.EOF
		}
		if err != nil {
			pr.err = err
			return Member{}, err
		}
		if quad.P.Value == treeMember.Value {
			iri, ok := quad.O.(rdf.IRI)
			if !ok {
				pr.err = fmt.Errorf("ldes: tree:member object must be an IRI, got %s", quad.O)
				return Member{}, pr.err
			}
			started := &Member{IRI: iri}
			if current != nil {
				pr.pending = started
				return *current, nil
			}
			current = started
			continue
		}
		if current == nil {
			// hypermedia block before the first member
			continue
		}
		current.Quads = append(current.Quads, quad)
	}
}

// Close releases the underlying decoder.
func (pr *PageReader) Close() error {
	return pr.dec.Close()
}
