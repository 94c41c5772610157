// Package embedding defines the text-to-vector [Provider] interface consumed
// by the selection engine, together with the sentinel errors implementations
// report. Concrete providers live in subpackages; see
// [github.com/toolscope/toolscope/providers/embedding/openaiembed] for the
// OpenAI-compatible HTTP implementation.
package embedding
