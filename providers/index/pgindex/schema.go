package pgindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// createExtensionSQL enables pgvector; the vector column type and the `<=>`
// cosine distance operator come from it.
const createExtensionSQL = `CREATE EXTENSION IF NOT EXISTS vector`

// createTableSQL is the DDL for the similarity index table: one row per tool,
// keyed by tool_id. The embedding column length is fixed at table creation
// and never varies afterwards.
const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
    tool_id         TEXT PRIMARY KEY,
    tool_name       TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    keywords        TEXT[],
    parameters      JSONB,
    tool_definition JSONB,
    source_text     TEXT NOT NULL DEFAULT '',
    embedding       vector(%d) NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// createEmbeddingIndexSQL creates the approximate nearest-neighbor index over
// embeddings with cosine distance semantics, matching the `<=>` operator used
// by Query.
const createEmbeddingIndexSQL = `CREATE INDEX IF NOT EXISTS %s
    ON %s USING hnsw (embedding vector_cosine_ops)`

// EnsureSchema enables the pgvector extension and creates the index table and
// its ANN index if they do not already exist. This is a convenience helper
// for development and prototyping; production deployments should use proper
// migration tooling (goose, golang-migrate, etc.) to manage schema changes.
func (p *PgIndex) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createExtensionSQL); err != nil {
		return fmt.Errorf("pgindex: create vector extension: %w", err)
	}

	tableSQL := fmt.Sprintf(createTableSQL, p.tableName, p.dimensions)
	if _, err := p.db.Exec(ctx, tableSQL); err != nil {
		return fmt.Errorf("pgindex: create table: %w", err)
	}

	// The table name may already be a quoted identifier; strip the quotes
	// before deriving the index name and sanitize the result as a whole.
	indexName := pgx.Identifier{"idx_" + strings.Trim(p.tableName, `"`) + "_embedding"}.Sanitize()
	indexSQL := fmt.Sprintf(createEmbeddingIndexSQL, indexName, p.tableName)
	if _, err := p.db.Exec(ctx, indexSQL); err != nil {
		return fmt.Errorf("pgindex: create embedding index: %w", err)
	}

	return nil
}
