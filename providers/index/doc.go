// Package index defines the similarity [Index] interface the selection
// engine queries, along with the [Record] and [Match] types that cross it.
// Concrete implementations live in subpackages: pgindex persists vectors in
// PostgreSQL with the pgvector extension, memindex keeps them in process
// memory for tests and database-free setups.
package index
