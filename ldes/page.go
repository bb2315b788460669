package ldes

import (
	"io"

	"github.com/geoknoesis/ldes-bench/rdf"
)

// WritePage writes members as a single TREE-profile page in N-Quads: a small
// hypermedia block first, then for each member a tree:member marker quad
// followed immediately by the member's quads. Encoding failures surface as
// errors; quads are never silently dropped.
func WritePage(w io.Writer, base string, members []Member) error {
	if base == "" {
		base = DefaultBase
	}
	page := rdf.IRI{Value: base + "page/0"}
	next := rdf.IRI{Value: base + "page/1"}
	coll := rdf.IRI{Value: base + "collection"}
	relation := rdf.BlankNode{ID: "r1"}

	enc := rdf.NewQuadEncoder(w)
	hypermedia := []rdf.Quad{
		{S: page, P: rdfType, O: treeNodeClass},
		{S: coll, P: rdfType, O: treeCollection},
		{S: coll, P: treeView, O: page},
		{S: page, P: treeRelation, O: relation},
		{S: relation, P: rdfType, O: treeGTERel},
		{S: relation, P: treeNodeRel, O: next},
		{S: relation, P: treeValue, O: rdf.Literal{Lexical: "0", Datatype: xsdInteger}},
		{S: relation, P: treePath, O: vocabValue},
	}
	for _, q := range hypermedia {
		if err := enc.Write(q); err != nil {
			return err
		}
	}

	// From the moment tree:member appears, a new member bundle starts.
	for _, m := range members {
		if err := enc.Write(rdf.Quad{S: coll, P: treeMember, O: m.IRI}); err != nil {
			return err
		}
		for _, q := range m.Quads {
			if err := enc.Write(q); err != nil {
				return err
			}
		}
	}
	return enc.Close()
}
