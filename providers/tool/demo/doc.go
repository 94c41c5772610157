// Package demo provides a fixed set of stand-in tools for exercising
// semantic selection. Executors are deterministic and make no network calls,
// so sessions behave identically across runs.
package demo
