package jelly

import "errors"

var (
	// ErrUnsupportedTerm indicates a quad term the encoding cannot
	// represent (nil terms, unknown kinds, literal graph names).
	ErrUnsupportedTerm = errors.New("jelly: unsupported term")
	// ErrMissingOptions indicates a stream whose first row is not the
	// stream options row.
	ErrMissingOptions = errors.New("jelly: stream options row missing")
	// ErrTruncated indicates a stream cut off inside a frame.
	ErrTruncated = errors.New("jelly: truncated stream")
)
