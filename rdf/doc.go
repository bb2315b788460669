// Package rdf provides a compact RDF term model and a streaming N-Quads
// codec.
//
// The surface is intentionally small: NewQuadDecoder returns a pull-style
// decoder (call Next until io.EOF), NewQuadEncoder returns a push-style
// encoder. Parse failures carry the 1-based line number and the offending
// statement via *ParseError.
package rdf
