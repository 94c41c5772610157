// Package openaiembed implements the [embedding.Provider] interface over any
// OpenAI-compatible /v1/embeddings HTTP endpoint. The main entry point is
// [New]; [Client.Initialize] probes the endpoint once and is idempotent, and
// embeds are lazily initialized so a Client constructed at startup works
// without an explicit warm-up call.
package openaiembed
