// Package interpreter is a single-threaded tree-walking evaluator: given a
// parsed Program it locates the Main function, dispatches calls through a
// parent-chained Scope, and emits a runtime trace with one line per
// statement it executes and per function it calls.
package interpreter

import (
	"fmt"
	"strconv"

	"github.com/ambitlang/ambit/internal/ast"
)

// Kind tags which alternative of the runtime Value union is populated.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindFunction
)

// Value is the tagged union every expression evaluates to: a bool, int,
// float, string, or function. Values have copy semantics; a function
// value's body is borrowed from the read-only AST, and its
// BoundArguments/ComposedOf are copied structurally on bind/compose.
type Value struct {
	Kind Kind

	BoolValue   bool
	IntValue    int64
	FloatValue  float64
	StringValue string
	Function    *FunctionValue
}

// FunctionValue is a first-class function: a borrowed reference to its
// parameter list and body, plus already-bound arguments (from `<<`) and an
// optional owning reference to the function it is composed after (from
// `>>`).
type FunctionValue struct {
	Parameters     []*ast.Parameter
	Body           *ast.Block
	BoundArguments []Value
	ComposedOf     *Value
}

func BoolValue(b bool) Value     { return Value{Kind: KindBool, BoolValue: b} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, IntValue: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, FloatValue: f} }
func StringValue(s string) Value { return Value{Kind: KindString, StringValue: s} }

func FunctionValueOf(params []*ast.Parameter, body *ast.Block) Value {
	return Value{Kind: KindFunction, Function: &FunctionValue{Parameters: params, Body: body}}
}

// Text renders a Value's textual form, used both for string coercion and
// for the interpreter's runtime trace output.
func (v Value) Text() string {
	switch v.Kind {
	case KindBool:
		if v.BoolValue {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.IntValue, 10)
	case KindFloat:
		return strconv.FormatFloat(v.FloatValue, 'f', 6, 64)
	case KindString:
		return v.StringValue
	case KindFunction:
		return "Function"
	default:
		return fmt.Sprintf("<unknown kind %d>", v.Kind)
	}
}

// withBoundArguments returns a copy of the function value with args
// appended to its bound-argument list, the runtime effect of `<<`.
func (f *FunctionValue) withBoundArguments(args []Value) *FunctionValue {
	bound := make([]Value, 0, len(f.BoundArguments)+len(args))
	bound = append(bound, f.BoundArguments...)
	bound = append(bound, args...)
	return &FunctionValue{
		Parameters:     f.Parameters,
		Body:           f.Body,
		BoundArguments: bound,
		ComposedOf:     f.ComposedOf,
	}
}

// composedWith returns a copy of f with composedOf set to left, the
// runtime effect of `left >> f`. The caller has already verified f takes
// exactly one parameter.
func (f *FunctionValue) composedWith(left Value) *FunctionValue {
	return &FunctionValue{
		Parameters:     f.Parameters,
		Body:           f.Body,
		BoundArguments: f.BoundArguments,
		ComposedOf:     &left,
	}
}

// arity is how many arguments a call to this function value must end up
// with once its bound arguments are prepended to the call's own: its
// parameter count, unless it is composed, in which case it is how many
// arguments the composed-after function still needs.
func (f *FunctionValue) arity() int {
	if f.ComposedOf != nil {
		return len(f.ComposedOf.Function.Parameters) - len(f.ComposedOf.Function.BoundArguments)
	}
	return len(f.Parameters)
}
