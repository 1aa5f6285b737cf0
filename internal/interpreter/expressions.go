package interpreter

import (
	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/token"
)

// evalExpression dispatches the two expression productions the grammar
// actually yields at `expression` position: a plain StandardExpression, or
// a bracketed FuncExpression.
func (in *Interpreter) evalExpression(scope *Scope, expr ast.Expression) (Value, *diagnostics.Diagnostic) {
	switch e := expr.(type) {
	case *ast.StandardExpression:
		return in.evalStandardExpression(scope, e)
	case *ast.FuncExpression:
		return in.evalFuncExpression(scope, e)
	default:
		return Value{}, diagnostics.Semantic(diagnostics.UnknownOperator, expr.Pos(), "unhandled expression type %T", expr)
	}
}

// evalStandardExpression short-circuits on the first truthy Conjunction; if
// there is only one, its value passes through unchanged (no bool
// coercion).
func (in *Interpreter) evalStandardExpression(scope *Scope, e *ast.StandardExpression) (Value, *diagnostics.Diagnostic) {
	if len(e.Conjunctions) == 1 {
		return in.evalConjunction(scope, e.Conjunctions[0])
	}
	for _, c := range e.Conjunctions {
		v, d := in.evalConjunction(scope, c)
		if d != nil {
			return Value{}, d
		}
		b, d2 := CoerceBool(v, c.Position)
		if d2 != nil {
			return Value{}, d2
		}
		if b {
			return BoolValue(true), nil
		}
	}
	return BoolValue(false), nil
}

// evalConjunction short-circuits on the first falsy Relation; symmetric
// with evalStandardExpression.
func (in *Interpreter) evalConjunction(scope *Scope, c *ast.Conjunction) (Value, *diagnostics.Diagnostic) {
	if len(c.Relations) == 1 {
		return in.evalRelation(scope, c.Relations[0])
	}
	for _, r := range c.Relations {
		v, d := in.evalRelation(scope, r)
		if d != nil {
			return Value{}, d
		}
		b, d2 := CoerceBool(v, r.Position)
		if d2 != nil {
			return Value{}, d2
		}
		if !b {
			return BoolValue(false), nil
		}
	}
	return BoolValue(true), nil
}

func (in *Interpreter) evalRelation(scope *Scope, r *ast.Relation) (Value, *diagnostics.Diagnostic) {
	first, d := in.evalAdditive(scope, r.First)
	if d != nil {
		return Value{}, d
	}
	if r.Operator == "" {
		return first, nil
	}
	second, d2 := in.evalAdditive(scope, r.SecondAdditive)
	if d2 != nil {
		return Value{}, d2
	}
	switch r.Operator {
	case ast.RelEq:
		b, d3 := Equal(first, second, r.Position)
		return BoolValue(b), d3
	case ast.RelNE:
		b, d3 := Equal(first, second, r.Position)
		if d3 != nil {
			return Value{}, d3
		}
		return BoolValue(!b), nil
	case ast.RelLt:
		b, d3 := Compare(first, second, "<", r.Position)
		return BoolValue(b), d3
	case ast.RelLE:
		b, d3 := Compare(first, second, "<=", r.Position)
		return BoolValue(b), d3
	case ast.RelGt:
		b, d3 := Compare(first, second, ">", r.Position)
		return BoolValue(b), d3
	case ast.RelGE:
		b, d3 := Compare(first, second, ">=", r.Position)
		return BoolValue(b), d3
	default:
		return Value{}, diagnostics.Semantic(diagnostics.UnknownOperator, r.Position, "unknown relational operator %q", r.Operator)
	}
}

func (in *Interpreter) evalAdditive(scope *Scope, a *ast.Additive) (Value, *diagnostics.Diagnostic) {
	result, d := in.evalMultiplicative(scope, a.Multiplicatives[0])
	if d != nil {
		return Value{}, d
	}
	for i, op := range a.Operators {
		next, d2 := in.evalMultiplicative(scope, a.Multiplicatives[i+1])
		if d2 != nil {
			return Value{}, d2
		}
		var d3 *diagnostics.Diagnostic
		switch op {
		case "+":
			result, d3 = Add(result, next, a.Position)
		case "-":
			result, d3 = Sub(result, next, a.Position)
		default:
			d3 = diagnostics.Semantic(diagnostics.UnknownOperator, a.Position, "unknown additive operator %q", op)
		}
		if d3 != nil {
			return Value{}, d3
		}
	}
	if a.Negated {
		return UnaryMinus(result, a.Position)
	}
	return result, nil
}

func (in *Interpreter) evalMultiplicative(scope *Scope, m *ast.Multiplicative) (Value, *diagnostics.Diagnostic) {
	result, d := in.evalFactor(scope, m.Factors[0])
	if d != nil {
		return Value{}, d
	}
	for i, op := range m.Operators {
		next, d2 := in.evalFactor(scope, m.Factors[i+1])
		if d2 != nil {
			return Value{}, d2
		}
		var d3 *diagnostics.Diagnostic
		switch op {
		case "*":
			result, d3 = Mul(result, next, m.Position)
		case "/":
			result, d3 = Div(result, next, m.Position)
		default:
			d3 = diagnostics.Semantic(diagnostics.UnknownOperator, m.Position, "unknown multiplicative operator %q", op)
		}
		if d3 != nil {
			return Value{}, d3
		}
	}
	return result, nil
}

func (in *Interpreter) evalFactor(scope *Scope, f *ast.Factor) (Value, *diagnostics.Diagnostic) {
	var v Value
	var d *diagnostics.Diagnostic

	switch {
	case f.Literal != nil:
		v = evalLiteral(f.Literal)
	case f.Parens != nil:
		v, d = in.evalStandardExpression(scope, f.Parens)
	case f.Call != nil:
		v, _, d = in.evalCall(scope, f.Call, true)
	default:
		v, d = in.resolveVariable(scope, f.Identifier, f.Position)
	}
	if d != nil {
		return Value{}, d
	}

	if f.Negated {
		b, d2 := CoerceBool(v, f.Position)
		if d2 != nil {
			return Value{}, d2
		}
		return BoolValue(!b), nil
	}
	return v, nil
}

// resolveVariable looks up a bare identifier used as a plain factor (not a
// Bindable): it must already be a declared, initialized variable.
func (in *Interpreter) resolveVariable(scope *Scope, name string, pos token.Position) (Value, *diagnostics.Diagnostic) {
	_, v := scope.Lookup(name)
	if v == nil {
		return Value{}, diagnostics.Semantic(diagnostics.UnknownIdentifier, pos, "%q is not declared", name)
	}
	if !v.Initialized {
		return Value{}, diagnostics.Semantic(diagnostics.UninitializedVariable, pos, "variable %q is not initialized", name)
	}
	return v.Value, nil
}

func evalLiteral(l *ast.Literal) Value {
	switch l.Kind {
	case ast.LiteralBool:
		return BoolValue(l.BoolValue)
	case ast.LiteralInt:
		return IntValue(l.IntValue)
	case ast.LiteralFloat:
		return FloatValue(l.FloatValue)
	case ast.LiteralString:
		return StringValue(l.StringValue)
	default:
		return Value{}
	}
}

// evalFuncExpression folds composables left-to-right with `>>`.
func (in *Interpreter) evalFuncExpression(scope *Scope, fe *ast.FuncExpression) (Value, *diagnostics.Diagnostic) {
	v, d := in.evalComposable(scope, fe.Composables[0])
	if d != nil {
		return Value{}, d
	}
	for _, c := range fe.Composables[1:] {
		w, d2 := in.evalComposable(scope, c)
		if d2 != nil {
			return Value{}, d2
		}
		composed, d3 := compose(v, w, c.Position)
		if d3 != nil {
			return Value{}, d3
		}
		v = composed
	}
	return v, nil
}

func (in *Interpreter) evalComposable(scope *Scope, c *ast.Composable) (Value, *diagnostics.Diagnostic) {
	b, d := in.evalBindable(scope, c.Bindable)
	if d != nil {
		return Value{}, d
	}
	if !c.HasBind {
		return b, nil
	}
	args := make([]Value, len(c.Arguments))
	for i, a := range c.Arguments {
		v, d2 := in.evalExpression(scope, a)
		if d2 != nil {
			return Value{}, d2
		}
		args[i] = v
	}
	return bind(b, args, c.Position)
}

func (in *Interpreter) evalBindable(scope *Scope, b *ast.Bindable) (Value, *diagnostics.Diagnostic) {
	switch {
	case b.FunctionLiteral != nil:
		return FunctionValueOf(b.FunctionLiteral.Parameters, b.FunctionLiteral.Body), nil
	case b.FuncExpression != nil:
		return in.evalFuncExpression(scope, b.FuncExpression)
	case b.Call != nil:
		v, _, d := in.evalCall(scope, b.Call, true)
		return v, d
	default:
		return in.resolveFunctionValue(scope, b.Identifier, b.Position)
	}
}

// compose implements `v >> w`: w must have exactly one parameter; the
// result is a copy of w with composedOf set to v.
func compose(v, w Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	if v.Kind != KindFunction || w.Kind != KindFunction {
		return Value{}, diagnostics.Semantic(diagnostics.FunctionBindOnNonFunction, pos, "'>>' is only defined on function values")
	}
	if len(w.Function.Parameters) != 1 {
		return Value{}, diagnostics.Semantic(diagnostics.FunctionComposeArity, pos,
			"the right-hand side of '>>' must take exactly one parameter, got %d", len(w.Function.Parameters))
	}
	return Value{Kind: KindFunction, Function: w.Function.composedWith(v)}, nil
}

// bind implements `f << (args)`: only legal on function values.
func bind(f Value, args []Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	if f.Kind != KindFunction {
		return Value{}, diagnostics.Semantic(diagnostics.FunctionBindOnNonFunction, pos, "'<<' is only defined on function values")
	}
	return Value{Kind: KindFunction, Function: f.Function.withBoundArguments(args)}, nil
}
