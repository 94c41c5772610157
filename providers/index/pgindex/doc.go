// Package pgindex provides a PostgreSQL-backed implementation of the
// [index.Index] interface using the pgvector extension for cosine
// nearest-neighbor search. It uses pgx/v5 for efficient, pool-safe queries;
// upserts are keyed by tool_id and atomic per row, so the index tolerates
// concurrent registration and querying.
//
// The main entry point is [New]. Use [PgIndex.EnsureSchema] during
// development to auto-create the extension, table, and HNSW index;
// production deployments should manage schema migrations with dedicated
// tooling (goose, migrate, etc.).
package pgindex
