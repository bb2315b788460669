// Package jelly implements a frame-based binary RDF quad codec on the
// protobuf wire format.
//
// A stream is a sequence of length-delimited frames; each frame holds
// repeated rows. The first row of a stream declares the stream options.
// IRIs are encoded as references into prefix and name lookup tables that
// grow as table-entry rows appear in the stream; literal datatypes go
// through a third table. Consecutive quads in the same named graph use a
// repeat marker instead of re-encoding the graph term.
package jelly
