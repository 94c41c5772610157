package embedding

import (
	"context"
	"errors"
)

// DefaultDimensions is the vector size used when a provider is not configured
// otherwise. It matches the all-MiniLM family of sentence-embedding models.
const DefaultDimensions = 384

// ErrModelNotInitialized is returned when an embedding is requested before
// the provider is ready and it could not lazily initialize itself.
var ErrModelNotInitialized = errors.New("embedding: model not initialized")

// ErrEmptyEmbedding is returned when the provider produces a zero-length
// vector for a non-empty input.
var ErrEmptyEmbedding = errors.New("embedding: provider returned an empty embedding")

// Provider converts text into fixed-length numeric vectors. Implementations
// must be safe for concurrent use; Initialize must be idempotent.
type Provider interface {
	// Initialize prepares the provider for use. Calling it on an already
	// initialized provider is a no-op.
	Initialize(ctx context.Context) error

	// Dimensions returns the fixed length of the vectors this provider
	// produces.
	Dimensions() int

	// Embed converts a single text into a vector. Fails with
	// [ErrModelNotInitialized] if the provider is not ready and cannot
	// lazily initialize, or [ErrEmptyEmbedding] if the model returns a
	// zero-length result.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch converts each text into a vector, one per input in input
	// order. Same failure modes as Embed.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
