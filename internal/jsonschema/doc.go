// Package jsonschema derives JSON Schema documents from Go struct types via
// reflection. It intentionally covers only the subset of the standard needed
// to advertise tool parameters to a language model: flat objects, arrays,
// maps, primitives, enums, and required-field tracking driven by the
// `jsonschema` struct tag.
package jsonschema
