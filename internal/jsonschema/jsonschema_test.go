package jsonschema

import (
	"strings"
	"testing"
)

type arithmeticInput struct {
	A  float64 `json:"A"  jsonschema:"description=First operand,required"`
	B  float64 `json:"B"  jsonschema:"description=Second operand,required"`
	Op string  `json:"Op" jsonschema:"description=Operation type,enum=add,enum=sub,required"`
}

type nestedInput struct {
	Query   string            `json:"query" jsonschema:"description=Search query,required"`
	Limit   int               `json:"limit,omitempty"`
	Tags    []string          `json:"tags,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Hidden  string            `json:"-"`
	private string            //nolint:unused
}

// TestGenerate_Struct verifies basic object generation with descriptions,
// enums, and required fields from tags.
func TestGenerate_Struct(t *testing.T) {
	schema := Generate[arithmeticInput]()

	if schema.Type != "object" {
		t.Fatalf("expected object schema, got %q", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}

	a := schema.Properties["A"]
	if a == nil || a.Type != "number" || a.Description != "First operand" {
		t.Errorf("unexpected schema for A: %+v", a)
	}

	op := schema.Properties["Op"]
	if op == nil || op.Type != "string" {
		t.Fatalf("unexpected schema for Op: %+v", op)
	}
	if len(op.Enum) != 2 || op.Enum[0] != "add" || op.Enum[1] != "sub" {
		t.Errorf("unexpected enum for Op: %v", op.Enum)
	}

	if len(schema.Required) != 3 {
		t.Errorf("expected all 3 fields required, got %v", schema.Required)
	}
}

// TestGenerate_FieldKinds verifies json tag handling and nested collection
// types.
func TestGenerate_FieldKinds(t *testing.T) {
	schema := Generate[nestedInput]()

	if _, ok := schema.Properties["Hidden"]; ok {
		t.Error("json:\"-\" field must be skipped")
	}
	if _, ok := schema.Properties["private"]; ok {
		t.Error("unexported field must be skipped")
	}

	limit := schema.Properties["limit"]
	if limit == nil || limit.Type != "integer" {
		t.Errorf("unexpected schema for limit: %+v", limit)
	}

	tags := schema.Properties["tags"]
	if tags == nil || tags.Type != "array" || tags.Items == nil || tags.Items.Type != "string" {
		t.Errorf("unexpected schema for tags: %+v", tags)
	}

	filters := schema.Properties["filters"]
	if filters == nil || filters.Type != "object" {
		t.Errorf("unexpected schema for filters: %+v", filters)
	}

	// Only query is required: the rest carry omitempty.
	if len(schema.Required) != 1 || schema.Required[0] != "query" {
		t.Errorf("expected required [query], got %v", schema.Required)
	}
}

// TestGenerate_EmptyStruct verifies a field-less struct produces a bare
// object schema.
func TestGenerate_EmptyStruct(t *testing.T) {
	schema := Generate[struct{}]()
	if schema.Type != "object" || len(schema.Properties) != 0 || len(schema.Required) != 0 {
		t.Errorf("unexpected schema %+v", schema)
	}
}

// TestSchema_String verifies the compact JSON rendering.
func TestSchema_String(t *testing.T) {
	s := Generate[arithmeticInput]().String()
	if !strings.Contains(s, `"type":"object"`) {
		t.Errorf("expected object type in %q", s)
	}
	if !strings.Contains(s, `"enum":["add","sub"]`) {
		t.Errorf("expected enum in %q", s)
	}
}
