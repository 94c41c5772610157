package tool

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/toolscope/toolscope/core/parse"
	"github.com/toolscope/toolscope/internal/jsonschema"
)

// Descriptor is the metadata a tool advertises: its unique name, a
// human-readable description, retrieval keywords, and the JSON schema of its
// parameters. The name doubles as the tool's identifier everywhere in the
// system (catalog key, similarity index key, session membership).
type Descriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Keywords    []string           `json:"keywords,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// SearchText builds the text that represents this tool in the similarity
// index: the name, then the description, then the keywords, space-joined.
// For a tool named "get_weather" with keywords "weather forecast temperature"
// and no description this yields "get_weather. weather forecast temperature".
func (d Descriptor) SearchText() string {
	parts := make([]string, 0, 2+len(d.Keywords))
	parts = append(parts, d.Name+".")
	if d.Description != "" {
		parts = append(parts, d.Description)
	}
	parts = append(parts, d.Keywords...)
	return strings.Join(parts, " ")
}

// GenericTool is the provider-agnostic interface for all tools. It abstracts
// over the concrete generic type parameters of [Tool] so that tools can be
// stored, selected, and dispatched without knowing their input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata used to index this tool for retrieval
	// and to advertise it to a language model.
	ToolInfo() Descriptor

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution
	// fails.
	Call(ctx context.Context, inputJSON string) (string, error)
}

// Tool binds a name, description, and keyword list to a strongly-typed Go
// function, deriving JSON schemas for input (I) and output (O) via
// reflection. Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Keywords    []string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Keywords    []string
}

// WithDescription sets a human-readable description for the tool. The
// description is part of the tool's search text, so it directly influences
// which queries retrieve the tool.
func WithDescription(description string) func(*funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// WithKeywords sets the retrieval keywords for the tool. Keywords are
// appended to the search text embedded into the similarity index; order is
// preserved.
func WithKeywords(keywords ...string) func(*funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Keywords = keywords
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// JSON schemas for I and O are derived automatically via reflection.
//
// Example:
//
//	weather := tool.NewTool("get_weather", forecastFunc,
//	    tool.WithDescription("Get the current weather for a city."),
//	    tool.WithKeywords("weather", "forecast", "temperature"),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(*funcToolOptions)) *Tool[I, O] {
	opts := &funcToolOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.Description,
		Keywords:    opts.Keywords,
		Parameters:  jsonschema.Generate[I](),
		Output:      jsonschema.Generate[O](),
		Function:    function,
	}
}

// ToolInfo returns the [Descriptor] for this tool.
func (t *Tool[I, O]) ToolInfo() Descriptor {
	return Descriptor{
		Name:        t.Name,
		Description: t.Description,
		Keywords:    t.Keywords,
		Parameters:  t.Parameters,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. The input is parsed tolerantly (malformed LLM JSON is repaired),
// the function executed, and the result serialized back to JSON.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	parsedInput, err := parse.StringAs[I](inputJSON)
	if err != nil {
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	if err != nil {
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(outputBytes), nil
}
