package index

import (
	"context"
	"encoding/json"
)

// Record is one similarity-index entry: a tool's identifying metadata, the
// text that was embedded, and its embedding vector. At most one record exists
// per ToolID; upserting an existing ToolID replaces everything but the
// record's creation timestamp.
type Record struct {
	ToolID      string
	ToolName    string
	Description string
	Keywords    []string
	// Parameters is the serialized parameter schema, stored opaquely.
	Parameters json.RawMessage
	// Definition is an opaque serialized snapshot of the full tool metadata.
	Definition json.RawMessage
	// SourceText is the text the vector was computed from.
	SourceText string
	Vector     []float32
}

// Match is a query hit: a tool identifier and its cosine similarity to the
// query vector. Similarity is 1 - cosineDistance, so 1 means identical
// direction; values are interpreted in [0, 1].
type Match struct {
	ToolID     string
	Similarity float64
}

// Index is a store of one vector per tool identifier supporting idempotent
// upsert and nearest-neighbor queries by cosine similarity.
//
// Implementations must make Upsert atomic per tool: a failed write must never
// leave a partially updated record observable to concurrent readers.
type Index interface {
	// Upsert inserts or fully replaces the record for rec.ToolID.
	Upsert(ctx context.Context, rec Record) error

	// Query returns up to topK tool identifiers whose stored vectors have
	// cosine similarity strictly greater than threshold with the given
	// vector, ordered by similarity descending. Ties on equal similarity
	// are broken in an implementation-defined order. Querying an empty
	// index returns an empty result, not an error.
	Query(ctx context.Context, vector []float32, topK int, threshold float64) ([]Match, error)
}
