package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema is a minimal JSON Schema representation, covering the subset needed
// to describe tool parameters: objects with typed properties, arrays, enums,
// and required fields.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
	// AdditionalProperties controls whether undeclared properties are allowed.
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}

// Generate derives a JSON schema from the struct type T via reflection.
//
// Field customization uses the `jsonschema` struct tag:
//
//	Field string `json:"field" jsonschema:"description=What this is,required"`
//	Op    string `json:"op"    jsonschema:"enum=add,enum=sub,required"`
//
// Supported tag items are "description=...", repeated "enum=...", and the
// bare flag "required". A non-pointer field without an omitempty json tag is
// required by default.
func Generate[T any]() *Schema {
	return generate(reflect.TypeFor[T]())
}

func generate(t reflect.Type) *Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return structSchema(t)
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generate(t.Elem())}
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	default:
		return &Schema{Type: "object"}
	}
}

// structSchema builds an object schema from the exported fields of a struct.
func structSchema(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fieldSchema := generate(field.Type)
		requiredByTag := applyTag(field, fieldSchema)
		schema.Properties[name] = fieldSchema

		if requiredByTag || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// jsonFieldName resolves the property name from the json tag, falling back to
// the Go field name. skip is true for fields tagged `json:"-"`.
func jsonFieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag != "" {
		if comma := strings.Index(tag, ","); comma != -1 {
			if tag[:comma] != "" {
				name = tag[:comma]
			}
			omitEmpty = strings.Contains(tag[comma:], "omitempty")
		} else {
			name = tag
		}
	}
	return name, omitEmpty, false
}

// applyTag interprets the `jsonschema` struct tag on a field and mutates the
// field schema accordingly. It reports whether the tag marked the field as
// required. Enum values are converted to the field's Go kind; values that do
// not convert are dropped rather than failing schema generation.
func applyTag(field reflect.StructField, schema *Schema) (required bool) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false
	}

	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		switch {
		case !hasValue && key == "required":
			required = true
		case key == "description":
			schema.Description = value
		case key == "enum":
			if v, err := enumValue(field.Type.Kind(), value); err == nil {
				schema.Enum = append(schema.Enum, v)
			}
		}
	}
	return required
}

// enumValue converts a tag-supplied enum literal to the field's kind.
func enumValue(kind reflect.Kind, value string) (any, error) {
	switch kind {
	case reflect.String:
		return value, nil
	case reflect.Bool:
		return strconv.ParseBool(value)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	default:
		return nil, fmt.Errorf("enum unsupported for kind %v", kind)
	}
}

// String returns the compact JSON representation of the schema.
func (s *Schema) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
