// Package selection implements embedding-backed retrieval of catalog tools.
// [Engine.IndexCatalog] registers each tool's searchable text in the
// similarity index at startup; [Engine.SelectTools] turns a free-text query
// into a ranked, thresholded, capped list of candidate tool identifiers.
package selection
