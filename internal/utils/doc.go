// Package utils provides shared low-level helpers used throughout the
// toolscope internals: a synchronous JSON-over-HTTP request helper and string
// utilities.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips and
// [TruncateString] for bounding log and error output.
package utils
