package rdf

// Decoder streams quads from an input.
// Next returns io.EOF after the last statement.
type Decoder interface {
	Next() (Quad, error)
	Close() error
}

// Encoder streams quads to an output.
type Encoder interface {
	Write(Quad) error
	Flush() error
	Close() error
}
