package jelly

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/geoknoesis/ldes-bench/rdf"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithFrameRows sets how many rows are buffered before a frame is flushed.
func WithFrameRows(n int) Option {
	return func(e *Encoder) {
		if n > 0 {
			e.frameRows = n
		}
	}
}

// Encoder writes quads as a delimited binary frame stream.
type Encoder struct {
	w         io.Writer
	frameRows int

	rows [][]byte

	prefixes  map[string]uint64
	names     map[string]uint64
	datatypes map[string]uint64

	lastGraph    rdf.Term
	hasLastGraph bool
	wroteOptions bool
	err          error
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{
		w:         w,
		frameRows: DefaultFrameRows,
		prefixes:  map[string]uint64{},
		names:     map[string]uint64{},
		datatypes: map[string]uint64{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write encodes one quad. Terms the format cannot represent return
// ErrUnsupportedTerm; nothing is silently dropped.
func (e *Encoder) Write(q rdf.Quad) error {
	if e.err != nil {
		return e.err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return rdf.ErrMissingField
	}
	e.ensureOptions()

	var buf []byte
	var err error
	buf, err = e.appendTerm(buf, q.S, fieldQuadSubjectIRI, fieldQuadSubjectBNode, fieldQuadSubjectLiteral)
	if err != nil {
		return err
	}
	pred := e.appendIRIRef(nil, q.P)
	buf = protowire.AppendTag(buf, fieldQuadPredicate, protowire.BytesType)
	buf = protowire.AppendBytes(buf, pred)
	buf, err = e.appendTerm(buf, q.O, fieldQuadObjectIRI, fieldQuadObjectBNode, fieldQuadObjectLiteral)
	if err != nil {
		return err
	}
	buf, err = e.appendGraph(buf, q.G)
	if err != nil {
		return err
	}

	e.appendRow(fieldRowQuad, buf)
	e.lastGraph = q.G
	e.hasLastGraph = true

	if len(e.rows) >= e.frameRows {
		return e.flushFrame()
	}
	return nil
}

// Flush writes any buffered rows as a frame.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.ensureOptions()
	return e.flushFrame()
}

// Close flushes the encoder. An empty stream still carries its options row.
func (e *Encoder) Close() error {
	return e.Flush()
}

func (e *Encoder) ensureOptions() {
	if e.wroteOptions {
		return
	}
	var buf []byte
	buf = protowire.AppendTag(buf, fieldOptVersion, protowire.VarintType)
	buf = protowire.AppendVarint(buf, streamVersion)
	buf = protowire.AppendTag(buf, fieldOptPhysicalType, protowire.VarintType)
	buf = protowire.AppendVarint(buf, physicalTypeQuads)
	e.appendRow(fieldRowOptions, buf)
	e.wroteOptions = true
}

func (e *Encoder) appendRow(kind protowire.Number, body []byte) {
	var row []byte
	row = protowire.AppendTag(row, kind, protowire.BytesType)
	row = protowire.AppendBytes(row, body)
	e.rows = append(e.rows, row)
}

func (e *Encoder) appendTerm(buf []byte, term rdf.Term, iriField, bnodeField, litField protowire.Number) ([]byte, error) {
	switch t := term.(type) {
	case rdf.IRI:
		ref := e.appendIRIRef(nil, t)
		buf = protowire.AppendTag(buf, iriField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, ref)
		return buf, nil
	case rdf.BlankNode:
		buf = protowire.AppendTag(buf, bnodeField, protowire.BytesType)
		buf = protowire.AppendString(buf, t.ID)
		return buf, nil
	case rdf.Literal:
		lit := e.appendLiteral(nil, t)
		buf = protowire.AppendTag(buf, litField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, lit)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedTerm, term)
	}
}

func (e *Encoder) appendGraph(buf []byte, graph rdf.Term) ([]byte, error) {
	if graph == nil {
		return buf, nil
	}
	if e.hasLastGraph && rdf.TermsEqual(graph, e.lastGraph) {
		buf = protowire.AppendTag(buf, fieldQuadGraphMarker, protowire.VarintType)
		buf = protowire.AppendVarint(buf, graphMarkerRepeat)
		return buf, nil
	}
	switch t := graph.(type) {
	case rdf.IRI:
		ref := e.appendIRIRef(nil, t)
		buf = protowire.AppendTag(buf, fieldQuadGraphIRI, protowire.BytesType)
		buf = protowire.AppendBytes(buf, ref)
		return buf, nil
	case rdf.BlankNode:
		buf = protowire.AppendTag(buf, fieldQuadGraphBNode, protowire.BytesType)
		buf = protowire.AppendString(buf, t.ID)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %s as graph name", ErrUnsupportedTerm, graph)
	}
}

func (e *Encoder) appendIRIRef(buf []byte, iri rdf.IRI) []byte {
	prefix, name := splitIRI(iri.Value)
	if prefix != "" {
		id := e.tableID(e.prefixes, fieldRowPrefix, prefix)
		buf = protowire.AppendTag(buf, fieldIRIPrefixID, protowire.VarintType)
		buf = protowire.AppendVarint(buf, id)
	}
	if name != "" {
		id := e.tableID(e.names, fieldRowName, name)
		buf = protowire.AppendTag(buf, fieldIRINameID, protowire.VarintType)
		buf = protowire.AppendVarint(buf, id)
	}
	return buf
}

func (e *Encoder) appendLiteral(buf []byte, lit rdf.Literal) []byte {
	buf = protowire.AppendTag(buf, fieldLiteralLexical, protowire.BytesType)
	buf = protowire.AppendString(buf, lit.Lexical)
	if lit.Lang != "" {
		buf = protowire.AppendTag(buf, fieldLiteralLang, protowire.BytesType)
		buf = protowire.AppendString(buf, lit.Lang)
	}
	if lit.Datatype.Value != "" {
		id := e.tableID(e.datatypes, fieldRowDatatype, lit.Datatype.Value)
		buf = protowire.AppendTag(buf, fieldLiteralDatatype, protowire.VarintType)
		buf = protowire.AppendVarint(buf, id)
	}
	return buf
}

// tableID returns the id of value in the given table, emitting a table-entry
// row on first use. Entry rows always precede the quad row referencing them.
func (e *Encoder) tableID(table map[string]uint64, rowKind protowire.Number, value string) uint64 {
	if id, ok := table[value]; ok {
		return id
	}
	id := uint64(len(table) + 1)
	table[value] = id
	var entry []byte
	entry = protowire.AppendTag(entry, fieldEntryID, protowire.VarintType)
	entry = protowire.AppendVarint(entry, id)
	entry = protowire.AppendTag(entry, fieldEntryValue, protowire.BytesType)
	entry = protowire.AppendString(entry, value)
	e.appendRow(rowKind, entry)
	return id
}

func (e *Encoder) flushFrame() error {
	if len(e.rows) == 0 {
		return nil
	}
	var frame []byte
	for _, row := range e.rows {
		frame = protowire.AppendTag(frame, fieldFrameRow, protowire.BytesType)
		frame = protowire.AppendBytes(frame, row)
	}
	header := protowire.AppendVarint(nil, uint64(len(frame)))
	if _, err := e.w.Write(header); err != nil {
		e.err = err
		return err
	}
	if _, err := e.w.Write(frame); err != nil {
		e.err = err
		return err
	}
	e.rows = e.rows[:0]
	return nil
}

// splitIRI splits an IRI at the last '#' or '/' into a prefix (including the
// separator) and a local name.
func splitIRI(value string) (prefix, name string) {
	idx := strings.LastIndexAny(value, "#/")
	if idx < 0 {
		return "", value
	}
	return value[:idx+1], value[idx+1:]
}
