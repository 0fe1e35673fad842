package extract

import "errors"

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrNoText         = errors.New("no text extracted")
)

// Extractor turns downloaded bytes into plain text. Implementations are
// content-type specific; dispatch happens in the extraction pipeline.
type Extractor interface {
	Extract(data []byte) (string, error)
}
