package jelly

import "google.golang.org/protobuf/encoding/protowire"

// Stream framing: uvarint frame length, then a frame message.
//
// Frame message:
//	1 (repeated, bytes): row
//
// Row message, exactly one field set:
//	1 (bytes): stream options
//	2 (bytes): prefix table entry
//	3 (bytes): name table entry
//	4 (bytes): datatype table entry
//	5 (bytes): quad
//
// Stream options message:
//	1 (varint): stream version
//	2 (varint): physical type
//
// Table entry message (all three tables):
//	1 (varint): id, assigned sequentially from 1
//	2 (bytes):  value
//
// Quad message:
//	1/2/3 (bytes):  subject as IRI ref / blank node label / literal
//	4     (bytes):  predicate as IRI ref
//	5/6/7 (bytes):  object as IRI ref / blank node label / literal
//	8/9   (bytes):  graph as IRI ref / blank node label
//	10    (varint): graph marker, 1 = same graph as previous quad
// No graph field means the default graph.
//
// IRI ref message:
//	1 (varint): prefix table id, 0 = empty prefix
//	2 (varint): name table id, 0 = empty name
//
// Literal message:
//	1 (bytes):  lexical form
//	2 (bytes):  language tag
//	3 (varint): datatype table id
const (
	fieldFrameRow = protowire.Number(1)

	fieldRowOptions  = protowire.Number(1)
	fieldRowPrefix   = protowire.Number(2)
	fieldRowName     = protowire.Number(3)
	fieldRowDatatype = protowire.Number(4)
	fieldRowQuad     = protowire.Number(5)

	fieldOptVersion      = protowire.Number(1)
	fieldOptPhysicalType = protowire.Number(2)

	fieldEntryID    = protowire.Number(1)
	fieldEntryValue = protowire.Number(2)

	fieldQuadSubjectIRI     = protowire.Number(1)
	fieldQuadSubjectBNode   = protowire.Number(2)
	fieldQuadSubjectLiteral = protowire.Number(3)
	fieldQuadPredicate      = protowire.Number(4)
	fieldQuadObjectIRI      = protowire.Number(5)
	fieldQuadObjectBNode    = protowire.Number(6)
	fieldQuadObjectLiteral  = protowire.Number(7)
	fieldQuadGraphIRI       = protowire.Number(8)
	fieldQuadGraphBNode     = protowire.Number(9)
	fieldQuadGraphMarker    = protowire.Number(10)

	fieldIRIPrefixID = protowire.Number(1)
	fieldIRINameID   = protowire.Number(2)

	fieldLiteralLexical  = protowire.Number(1)
	fieldLiteralLang     = protowire.Number(2)
	fieldLiteralDatatype = protowire.Number(3)
)

const (
	streamVersion     = 1
	physicalTypeQuads = 1

	graphMarkerRepeat = 1
)

// DefaultFrameRows is the number of rows buffered per frame.
const DefaultFrameRows = 256
