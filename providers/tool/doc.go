// Package tool provides the foundational types for defining and executing
// tools that can be invoked by a conversational agent.
//
// A tool wraps a typed Go function together with its name, description, and
// retrieval keywords, with JSON schemas auto-derived for its input and output
// types. The main entry point for creating tools is [NewTool]; option
// functions [WithDescription] and [WithKeywords] configure the metadata that
// drives semantic retrieval.
//
// The [Catalog] type offers a thread-safe registry keyed by tool name; use
// [NewCatalog] or [NewCatalogWithTools] to create one. [Catalog.GetMultiple]
// implements the ordered, silently-partial lookup the selection pipeline
// relies on.
package tool
