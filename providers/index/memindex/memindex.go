package memindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/toolscope/toolscope/providers/index"
)

// Memory is an in-process implementation of [index.Index] using brute-force
// cosine similarity. It is concurrency-safe: upserts replace a record under
// the write lock, so readers never observe a partially updated entry.
//
// Insertion order of first appearance is retained so that queries are
// deterministic; equal similarities rank in insertion order (the interface
// leaves tie order unspecified, this is just the implementation's choice).
type Memory struct {
	dimensions int

	mu      sync.RWMutex
	records map[string]index.Record
	order   []string
}

// Compile-time check: Memory must implement index.Index.
var _ index.Index = (*Memory)(nil)

// New creates an empty in-memory index for vectors of the given fixed length.
func New(dimensions int) *Memory {
	return &Memory{
		dimensions: dimensions,
		records:    make(map[string]index.Record),
	}
}

// Dimensions returns the fixed vector length accepted by this index.
func (m *Memory) Dimensions() int {
	return m.dimensions
}

// Upsert inserts or fully replaces the record for rec.ToolID.
func (m *Memory) Upsert(_ context.Context, rec index.Record) error {
	if rec.ToolID == "" {
		return fmt.Errorf("memindex: upsert: empty tool id")
	}
	if len(rec.Vector) != m.dimensions {
		return fmt.Errorf("memindex: upsert %s: vector length %d, index dimension %d", rec.ToolID, len(rec.Vector), m.dimensions)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[rec.ToolID]; !exists {
		m.order = append(m.order, rec.ToolID)
	}
	m.records[rec.ToolID] = rec
	return nil
}

// Get returns the stored record for a tool id, if present.
func (m *Memory) Get(toolID string) (index.Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[toolID]
	return rec, ok
}

// Size returns the number of stored records.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Query scans every stored vector, keeps matches with similarity strictly
// greater than threshold, and returns at most topK of them ordered by
// similarity descending. An empty index yields an empty, non-nil result.
func (m *Memory) Query(_ context.Context, vector []float32, topK int, threshold float64) ([]index.Match, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("memindex: query: topK must be positive, got %d", topK)
	}
	if len(vector) != m.dimensions {
		return nil, fmt.Errorf("memindex: query: vector length %d, index dimension %d", len(vector), m.dimensions)
	}

	m.mu.RLock()
	matches := make([]index.Match, 0, len(m.order))
	for _, toolID := range m.order {
		similarity := cosineSimilarity(vector, m.records[toolID].Vector)
		if similarity > threshold {
			matches = append(matches, index.Match{ToolID: toolID, Similarity: similarity})
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// cosineSimilarity computes the cosine of the angle between two equal-length
// vectors. A zero-norm input yields 0 rather than NaN, so unembedable
// entries can never pass a positive threshold.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
