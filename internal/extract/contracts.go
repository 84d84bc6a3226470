package extract

import (
	"context"
	"iter"
)

// RawDocument is one uploaded file. It lives only for the duration of one ingestion.
type RawDocument struct {
	Data      []byte
	MediaType string
	Filename  string
}

// Fragment is one unit of parsed content emitted by a document parser.
// Text is empty for fragments that carry no text.
type Fragment struct {
	Page int
	Text string
}

// Fragments is a lazy, finite, non-restartable stream of fragments in document order.
// A non-nil error terminates the stream.
type Fragments = iter.Seq2[Fragment, error]

// TextExtractor is Stage 1: document bytes -> flat text.
type TextExtractor interface {
	Extract(ctx context.Context, doc RawDocument) (string, error)
}
