// Package parse converts LLM-supplied text into strongly-typed Go values.
// Its main entry point is [StringAs], a generic parser that falls back to
// JSON repair for the malformed-but-recoverable payloads language models
// frequently produce.
package parse
