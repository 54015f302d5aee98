// Package embedding provides text embedding generation and the vector math
// used for semantic similarity scoring.
package embedding

import "context"

// Embedder converts texts into fixed-length numeric vectors.
//
// Embed is batch-first: output vectors are returned in input order, one per
// text, and an empty input yields an empty output without error.
// Implementations must not retry internally; retry policy belongs to the
// caller.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Model returns the model identifier, for logging.
	Model() string
	// Close releases any resources held by the embedder.
	Close() error
}
