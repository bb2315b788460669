package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/ldes-bench/rdf"
)

const (
	benchNS   = "https://example.org/benchmark/"
	dctermsNS = "http://purl.org/dc/terms/"
	xsdNS     = "http://www.w3.org/2001/XMLSchema#"
	rdfNS     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Manifest describes one benchmark run for the JSON-LD run manifest.
type Manifest struct {
	RunID     uuid.UUID
	Started   time.Time
	Members   int
	Quads     int
	Artifacts []ArtifactSize
}

// WriteManifest renders the run description as JSON-LD. The metadata graph
// is built as N-Quads and handed to the JSON-LD processor for conversion.
func WriteManifest(w io.Writer, m Manifest) error {
	nquads, err := manifestQuads(m)
	if err != nil {
		return fmt.Errorf("bench: manifest: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	doc, err := proc.FromRDF(nquads, opts)
	if err != nil {
		return fmt.Errorf("bench: manifest: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("bench: manifest: %w", err)
	}
	return nil
}

func manifestQuads(m Manifest) (string, error) {
	run := rdf.IRI{Value: "urn:uuid:" + m.RunID.String()}
	xsdInteger := rdf.IRI{Value: xsdNS + "integer"}

	quads := []rdf.Quad{
		{S: run, P: rdf.IRI{Value: rdfNS + "type"}, O: rdf.IRI{Value: benchNS + "Run"}},
		{S: run, P: rdf.IRI{Value: dctermsNS + "created"}, O: rdf.Literal{
			Lexical:  m.Started.UTC().Format(time.RFC3339),
			Datatype: rdf.IRI{Value: xsdNS + "dateTime"},
		}},
		{S: run, P: rdf.IRI{Value: benchNS + "memberCount"}, O: rdf.Literal{
			Lexical: strconv.Itoa(m.Members), Datatype: xsdInteger,
		}},
		{S: run, P: rdf.IRI{Value: benchNS + "quadCount"}, O: rdf.Literal{
			Lexical: strconv.Itoa(m.Quads), Datatype: xsdInteger,
		}},
	}
	for i, a := range m.Artifacts {
		node := rdf.BlankNode{ID: fmt.Sprintf("artifact%d", i)}
		quads = append(quads,
			rdf.Quad{S: run, P: rdf.IRI{Value: benchNS + "artifact"}, O: node},
			rdf.Quad{S: node, P: rdf.IRI{Value: benchNS + "path"}, O: rdf.Literal{Lexical: a.Path}},
			rdf.Quad{S: node, P: rdf.IRI{Value: benchNS + "bytes"}, O: rdf.Literal{
				Lexical: strconv.FormatInt(a.Bytes, 10), Datatype: xsdInteger,
			}},
		)
	}

	var buf strings.Builder
	enc := rdf.NewQuadEncoder(&buf)
	for _, q := range quads {
		if err := enc.Write(q); err != nil {
			return "", err
		}
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
