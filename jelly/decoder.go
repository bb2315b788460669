package jelly

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/geoknoesis/ldes-bench/rdf"
)

// Decoder reads quads from a delimited binary frame stream.
type Decoder struct {
	r *bufio.Reader

	prefixes  []string
	names     []string
	datatypes []string

	gotOptions bool
	lastGraph  rdf.Term

	pending []rdf.Quad
	err     error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next quad, or io.EOF at a clean frame boundary.
// Truncated or malformed frames yield descriptive errors.
func (d *Decoder) Next() (rdf.Quad, error) {
	if d.err != nil {
		return rdf.Quad{}, d.err
	}
	for len(d.pending) == 0 {
		if err := d.readFrame(); err != nil {
			d.err = err
			return rdf.Quad{}, err
		}
	}
	q := d.pending[0]
	d.pending = d.pending[1:]
	return q, nil
}

// Close releases the decoder.
func (d *Decoder) Close() error { return nil }

// maxFrameBytes bounds a single frame so a corrupt header cannot trigger a
// runaway allocation.
const maxFrameBytes = 64 << 20

func (d *Decoder) readFrame() error {
	length, err := binary.ReadUvarint(d.r)
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("%w: frame header: %v", ErrTruncated, err)
	}
	if length > maxFrameBytes {
		return fmt.Errorf("jelly: frame length %d exceeds limit", length)
	}
	frame := make([]byte, length)
	if _, err := io.ReadFull(d.r, frame); err != nil {
		return fmt.Errorf("%w: frame body: %v", ErrTruncated, err)
	}

	for len(frame) > 0 {
		num, typ, n := protowire.ConsumeTag(frame)
		if n < 0 {
			return fmt.Errorf("jelly: bad frame tag: %v", protowire.ParseError(n))
		}
		frame = frame[n:]
		if num != fieldFrameRow || typ != protowire.BytesType {
			return fmt.Errorf("jelly: unexpected frame field %d", num)
		}
		row, n := protowire.ConsumeBytes(frame)
		if n < 0 {
			return fmt.Errorf("jelly: bad frame row: %v", protowire.ParseError(n))
		}
		frame = frame[n:]
		if err := d.readRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) readRow(row []byte) error {
	num, typ, n := protowire.ConsumeTag(row)
	if n < 0 {
		return fmt.Errorf("jelly: bad row tag: %v", protowire.ParseError(n))
	}
	row = row[n:]
	if typ != protowire.BytesType {
		return fmt.Errorf("jelly: unexpected row wire type %d", typ)
	}
	body, n := protowire.ConsumeBytes(row)
	if n < 0 {
		return fmt.Errorf("jelly: bad row body: %v", protowire.ParseError(n))
	}

	switch num {
	case fieldRowOptions:
		return d.readOptions(body)
	case fieldRowPrefix:
		return d.readEntry(body, &d.prefixes, "prefix")
	case fieldRowName:
		return d.readEntry(body, &d.names, "name")
	case fieldRowDatatype:
		return d.readEntry(body, &d.datatypes, "datatype")
	case fieldRowQuad:
		if !d.gotOptions {
			return ErrMissingOptions
		}
		quad, err := d.readQuad(body)
		if err != nil {
			return err
		}
		d.pending = append(d.pending, quad)
		return nil
	default:
		return fmt.Errorf("jelly: unknown row kind %d", num)
	}
}

func (d *Decoder) readOptions(body []byte) error {
	version := uint64(0)
	physical := uint64(0)
	err := eachField(body, func(num protowire.Number, v uint64, _ []byte) error {
		switch num {
		case fieldOptVersion:
			version = v
		case fieldOptPhysicalType:
			physical = v
		}
		return nil
	})
	if err != nil {
		return err
	}
	if version == 0 || version > streamVersion {
		return fmt.Errorf("jelly: unsupported stream version %d", version)
	}
	if physical != physicalTypeQuads {
		return fmt.Errorf("jelly: unsupported physical type %d", physical)
	}
	d.gotOptions = true
	return nil
}

func (d *Decoder) readEntry(body []byte, table *[]string, kind string) error {
	var id uint64
	var value string
	err := eachField(body, func(num protowire.Number, v uint64, b []byte) error {
		switch num {
		case fieldEntryID:
			id = v
		case fieldEntryValue:
			value = string(b)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if id != uint64(len(*table)+1) {
		return fmt.Errorf("jelly: non-sequential %s table id %d", kind, id)
	}
	*table = append(*table, value)
	return nil
}

func (d *Decoder) readQuad(body []byte) (rdf.Quad, error) {
	var quad rdf.Quad
	var graphSet bool
	err := eachField(body, func(num protowire.Number, v uint64, b []byte) error {
		switch num {
		case fieldQuadSubjectIRI:
			iri, err := d.readIRIRef(b)
			if err != nil {
				return err
			}
			quad.S = iri
		case fieldQuadSubjectBNode:
			quad.S = rdf.BlankNode{ID: string(b)}
		case fieldQuadSubjectLiteral:
			lit, err := d.readLiteral(b)
			if err != nil {
				return err
			}
			quad.S = lit
		case fieldQuadPredicate:
			iri, err := d.readIRIRef(b)
			if err != nil {
				return err
			}
			quad.P = iri
		case fieldQuadObjectIRI:
			iri, err := d.readIRIRef(b)
			if err != nil {
				return err
			}
			quad.O = iri
		case fieldQuadObjectBNode:
			quad.O = rdf.BlankNode{ID: string(b)}
		case fieldQuadObjectLiteral:
			lit, err := d.readLiteral(b)
			if err != nil {
				return err
			}
			quad.O = lit
		case fieldQuadGraphIRI:
			iri, err := d.readIRIRef(b)
			if err != nil {
				return err
			}
			quad.G = iri
			graphSet = true
		case fieldQuadGraphBNode:
			quad.G = rdf.BlankNode{ID: string(b)}
			graphSet = true
		case fieldQuadGraphMarker:
			if v != graphMarkerRepeat {
				return fmt.Errorf("jelly: unknown graph marker %d", v)
			}
			quad.G = d.lastGraph
			graphSet = true
		}
		return nil
	})
	if err != nil {
		return rdf.Quad{}, err
	}
	if quad.S == nil || quad.P.Value == "" || quad.O == nil {
		return rdf.Quad{}, fmt.Errorf("jelly: quad row missing terms")
	}
	if !graphSet {
		quad.G = nil
	}
	d.lastGraph = quad.G
	return quad, nil
}

func (d *Decoder) readIRIRef(body []byte) (rdf.IRI, error) {
	var prefixID, nameID uint64
	err := eachField(body, func(num protowire.Number, v uint64, _ []byte) error {
		switch num {
		case fieldIRIPrefixID:
			prefixID = v
		case fieldIRINameID:
			nameID = v
		}
		return nil
	})
	if err != nil {
		return rdf.IRI{}, err
	}
	prefix, err := tableValue(d.prefixes, prefixID, "prefix")
	if err != nil {
		return rdf.IRI{}, err
	}
	name, err := tableValue(d.names, nameID, "name")
	if err != nil {
		return rdf.IRI{}, err
	}
	return rdf.IRI{Value: prefix + name}, nil
}

func (d *Decoder) readLiteral(body []byte) (rdf.Literal, error) {
	var lit rdf.Literal
	err := eachField(body, func(num protowire.Number, v uint64, b []byte) error {
		switch num {
		case fieldLiteralLexical:
			lit.Lexical = string(b)
		case fieldLiteralLang:
			lit.Lang = string(b)
		case fieldLiteralDatatype:
			dt, err := tableValue(d.datatypes, v, "datatype")
			if err != nil {
				return err
			}
			lit.Datatype = rdf.IRI{Value: dt}
		}
		return nil
	})
	return lit, err
}

func tableValue(table []string, id uint64, kind string) (string, error) {
	if id == 0 {
		return "", nil
	}
	if id > uint64(len(table)) {
		return "", fmt.Errorf("jelly: unknown %s table id %d", kind, id)
	}
	return table[id-1], nil
}

// eachField walks a message, handing varint fields as v and bytes fields
// as b to fn. Unknown fields are skipped.
func eachField(body []byte, fn func(num protowire.Number, v uint64, b []byte) error) error {
	for len(body) > 0 {
		num, typ, n := protowire.ConsumeTag(body)
		if n < 0 {
			return fmt.Errorf("jelly: bad field tag: %v", protowire.ParseError(n))
		}
		body = body[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(body)
			if n < 0 {
				return fmt.Errorf("jelly: bad varint field: %v", protowire.ParseError(n))
			}
			body = body[n:]
			if err := fn(num, v, nil); err != nil {
				return err
			}
		case protowire.BytesType:
			b, n := protowire.ConsumeBytes(body)
			if n < 0 {
				return fmt.Errorf("jelly: bad bytes field: %v", protowire.ParseError(n))
			}
			body = body[n:]
			if err := fn(num, 0, b); err != nil {
				return err
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, body)
			if n < 0 {
				return fmt.Errorf("jelly: bad field value: %v", protowire.ParseError(n))
			}
			body = body[n:]
		}
	}
	return nil
}
