package pgindex

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/toolscope/toolscope/providers/embedding"
	"github.com/toolscope/toolscope/providers/index"
)

// defaultTableName is the PostgreSQL table used when no custom name is provided.
const defaultTableName = "toolscope_tools"

// Querier abstracts the pgx query methods needed by PgIndex. Both
// *pgxpool.Pool and pgx.Tx satisfy this interface, allowing callers to inject
// either a connection pool or a single transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgIndex implements [index.Index] with PostgreSQL persistence and the
// pgvector extension for cosine nearest-neighbor search. Upserts rely on
// `INSERT ... ON CONFLICT DO UPDATE`, which Postgres applies atomically per
// row, so concurrent readers never observe a half-written record. Thread
// safety is handled by the underlying pgx connection pool; no
// application-level mutex is needed.
type PgIndex struct {
	db         Querier
	tableName  string
	dimensions int
}

// Compile-time check: PgIndex must implement index.Index.
var _ index.Index = (*PgIndex)(nil)

// Option configures optional PgIndex behavior.
type Option func(*PgIndex)

// WithTableName overrides the default table name ("toolscope_tools").
// The name is sanitized via pgx.Identifier to prevent SQL injection, since
// it is interpolated into queries via fmt.Sprintf.
func WithTableName(name string) Option {
	return func(p *PgIndex) {
		p.tableName = pgx.Identifier{name}.Sanitize()
	}
}

// WithDimensions overrides the fixed vector length (default 384). Must match
// the dimension the table was created with.
func WithDimensions(dimensions int) Option {
	return func(p *PgIndex) {
		if dimensions > 0 {
			p.dimensions = dimensions
		}
	}
}

// New creates a pgvector-backed similarity index. The db parameter must be a
// pgx-compatible query executor (typically *pgxpool.Pool).
func New(db Querier, opts ...Option) *PgIndex {
	pgIndex := &PgIndex{
		db:         db,
		tableName:  defaultTableName,
		dimensions: embedding.DefaultDimensions,
	}
	for _, opt := range opts {
		opt(pgIndex)
	}
	return pgIndex
}

// Dimensions returns the fixed vector length accepted by this index.
func (p *PgIndex) Dimensions() int {
	return p.dimensions
}

// Upsert inserts or replaces the record for rec.ToolID. Every column except
// created_at is overwritten on conflict, so the creation timestamp survives
// re-registration while the vector and metadata always reflect the latest
// write.
func (p *PgIndex) Upsert(ctx context.Context, rec index.Record) error {
	if rec.ToolID == "" {
		return fmt.Errorf("pgindex: upsert: empty tool id")
	}
	if len(rec.Vector) != p.dimensions {
		return fmt.Errorf("pgindex: upsert %s: vector length %d, index dimension %d", rec.ToolID, len(rec.Vector), p.dimensions)
	}

	query := fmt.Sprintf(`INSERT INTO %s
		(tool_id, tool_name, description, keywords, parameters, tool_definition, source_text, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::vector)
		ON CONFLICT (tool_id) DO UPDATE SET
			tool_name = EXCLUDED.tool_name,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			parameters = EXCLUDED.parameters,
			tool_definition = EXCLUDED.tool_definition,
			source_text = EXCLUDED.source_text,
			embedding = EXCLUDED.embedding`, p.tableName)

	_, err := p.db.Exec(ctx, query,
		rec.ToolID,
		rec.ToolName,
		rec.Description,
		rec.Keywords,
		rec.Parameters,
		rec.Definition,
		rec.SourceText,
		encodeVector(rec.Vector),
	)
	if err != nil {
		return fmt.Errorf("pgindex: upsert %s: %w", rec.ToolID, err)
	}
	return nil
}

// Query returns up to topK tool ids whose embeddings have cosine similarity
// strictly greater than threshold with the given vector, highest first.
// pgvector's `<=>` operator computes cosine distance, so similarity is
// 1 - distance. Querying an empty table yields an empty result.
func (p *PgIndex) Query(ctx context.Context, vector []float32, topK int, threshold float64) ([]index.Match, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("pgindex: query: topK must be positive, got %d", topK)
	}
	if len(vector) != p.dimensions {
		return nil, fmt.Errorf("pgindex: query: vector length %d, index dimension %d", len(vector), p.dimensions)
	}

	query := fmt.Sprintf(`SELECT tool_id, 1 - (embedding <=> $1::vector) AS similarity
		FROM %s
		WHERE 1 - (embedding <=> $1::vector) > $2
		ORDER BY similarity DESC
		LIMIT $3`, p.tableName)

	rows, err := p.db.Query(ctx, query, encodeVector(vector), threshold, topK)
	if err != nil {
		return nil, fmt.Errorf("pgindex: query: %w", err)
	}
	defer rows.Close()

	matches := make([]index.Match, 0, topK)
	for rows.Next() {
		var match index.Match
		if err := rows.Scan(&match.ToolID, &match.Similarity); err != nil {
			return nil, fmt.Errorf("pgindex: scan row: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgindex: iterate rows: %w", err)
	}
	return matches, nil
}

// Count returns the number of indexed tools.
func (p *PgIndex) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, p.tableName)

	var count int
	if err := p.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgindex: count: %w", err)
	}
	return count, nil
}
