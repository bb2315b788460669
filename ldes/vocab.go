package ldes

import "github.com/geoknoesis/ldes-bench/rdf"

// Namespaces used by the synthetic event stream.
const (
	// TreeNS is the TREE hypermedia vocabulary namespace.
	TreeNS = "https://w3id.org/tree/"
	// VocabNS is the synthetic payload vocabulary namespace.
	VocabNS = "https://example.org/vocab/"
	// DefaultBase is the base IRI for generated collections, pages and
	// members.
	DefaultBase = "https://example.org/ldes/"

	rdfNS     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS    = "http://www.w3.org/2000/01/rdf-schema#"
	xsdNS     = "http://www.w3.org/2001/XMLSchema#"
	dctermsNS = "http://purl.org/dc/terms/"
)

var (
	rdfType     = rdf.IRI{Value: rdfNS + "type"}
	rdfsLabel   = rdf.IRI{Value: rdfsNS + "label"}
	xsdInteger  = rdf.IRI{Value: xsdNS + "integer"}
	xsdDateTime = rdf.IRI{Value: xsdNS + "dateTime"}
	dctCreated  = rdf.IRI{Value: dctermsNS + "created"}

	treeNodeClass  = rdf.IRI{Value: TreeNS + "Node"}
	treeCollection = rdf.IRI{Value: TreeNS + "Collection"}
	treeView       = rdf.IRI{Value: TreeNS + "view"}
	treeRelation   = rdf.IRI{Value: TreeNS + "relation"}
	treeGTERel     = rdf.IRI{Value: TreeNS + "GreaterThanOrEqualToRelation"}
	treeNodeRel    = rdf.IRI{Value: TreeNS + "node"}
	treeValue      = rdf.IRI{Value: TreeNS + "value"}
	treePath       = rdf.IRI{Value: TreeNS + "path"}
	treeMember     = rdf.IRI{Value: TreeNS + "member"}

	vocabMember = rdf.IRI{Value: VocabNS + "Member"}
	vocabValue  = rdf.IRI{Value: VocabNS + "value"}
)
