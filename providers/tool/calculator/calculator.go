package calculator

import (
	"context"
	"fmt"

	"github.com/toolscope/toolscope/providers/tool"
)

// New returns a [tool.Tool] configured for basic arithmetic. The keywords
// make the tool discoverable by queries about math and computation.
func New() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"calculator",
		Calc,
		tool.WithDescription("Perform basic arithmetic operations: addition, subtraction, multiplication, and division."),
		tool.WithKeywords("math", "arithmetic", "calculate", "add", "subtract", "multiply", "divide"),
	)
}

// Calc applies req.Op to req.A and req.B. Division by zero returns an
// explicit error rather than IEEE infinity, since the result is surfaced to
// a language model as text.
func Calc(_ context.Context, req Input) (Output, error) {
	var result float64
	switch req.Op {
	case "add", "+":
		result = req.A + req.B
	case "sub", "-":
		result = req.A - req.B
	case "mul", "*":
		result = req.A * req.B
	case "div", "/":
		if req.B == 0 {
			return Output{}, fmt.Errorf("calculator: division by zero")
		}
		result = req.A / req.B
	default:
		return Output{}, fmt.Errorf("calculator: unsupported operation %q", req.Op)
	}
	return Output{Result: result}, nil
}

// Input holds the two operands and the operation applied by [Calc].
type Input struct {
	A  float64 `json:"A"  jsonschema:"description=First operand,required"`
	B  float64 `json:"B"  jsonschema:"description=Second operand,required"`
	Op string  `json:"Op" jsonschema:"description=Operation type,enum=add,enum=sub,enum=mul,enum=div,required"`
}

// Output carries the floating-point result produced by [Calc].
type Output struct {
	Result float64 `json:"result" jsonschema:"description=The result of the calculation"`
}
