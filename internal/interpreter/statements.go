package interpreter

import (
	"fmt"

	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/diagnostics"
)

// execStatements runs a statement sequence in scope, stopping as soon as a
// Return has executed.
func (in *Interpreter) execStatements(scope *Scope, stmts []ast.Statement) (*controlReturn, *diagnostics.Diagnostic) {
	for _, stmt := range stmts {
		ctrl, d := in.execStatement(scope, stmt)
		if d != nil {
			return nil, d
		}
		if ctrl != nil {
			return ctrl, nil
		}
	}
	return nil, nil
}

// execBlock pushes a child scope and runs the block's statements within it,
// indented one level deeper in the trace.
func (in *Interpreter) execBlock(scope *Scope, block *ast.Block) (*controlReturn, *diagnostics.Diagnostic) {
	in.Tracer.Indent()
	defer in.Tracer.Leave()
	return in.execStatements(scope.Push(), block.Statements)
}

func (in *Interpreter) execStatement(scope *Scope, stmt ast.Statement) (*controlReturn, *diagnostics.Diagnostic) {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.execBlock(scope, s)
	case *ast.Declaration:
		return in.execDeclaration(scope, s)
	case *ast.Assignment:
		return in.execAssignment(scope, s)
	case *ast.Conditional:
		return in.execConditional(scope, s)
	case *ast.WhileLoop:
		return in.execWhileLoop(scope, s)
	case *ast.Return:
		return in.execReturn(scope, s)
	case *ast.FunctionCallStatement:
		return in.execFunctionCallStatement(scope, s)
	default:
		return nil, diagnostics.Semantic(diagnostics.UnknownOperator, stmt.Pos(), "unhandled statement type %T", stmt)
	}
}

func (in *Interpreter) execDeclaration(scope *Scope, d *ast.Declaration) (*controlReturn, *diagnostics.Diagnostic) {
	if scope.IsDeclaredAnywhere(d.Identifier) {
		return nil, diagnostics.Semantic(diagnostics.RedeclaredVariable, d.Position, "variable %q is already declared", d.Identifier)
	}
	if _, isFn := in.Functions[d.Identifier]; isFn {
		return nil, diagnostics.Semantic(diagnostics.NameClashWithFunction, d.Position, "%q clashes with a function definition", d.Identifier)
	}

	if d.Initializer == nil {
		scope.DeclareUninitialized(d.Mutable, d.Identifier)
		in.Tracer.Line(fmt.Sprintf("Declaration %s", d.Identifier))
		return nil, nil
	}

	val, d2 := in.evalExpression(scope, d.Initializer)
	if d2 != nil {
		return nil, d2
	}
	scope.Declare(d.Mutable, d.Identifier, val)
	in.Tracer.Line(fmt.Sprintf("Declaration %s = %s", d.Identifier, val.Text()))
	return nil, nil
}

func (in *Interpreter) execAssignment(scope *Scope, a *ast.Assignment) (*controlReturn, *diagnostics.Diagnostic) {
	_, v := scope.Lookup(a.Identifier)
	if v == nil {
		return nil, diagnostics.Semantic(diagnostics.UnknownIdentifier, a.Position, "variable %q is not declared", a.Identifier)
	}
	if !v.Mutable {
		return nil, diagnostics.Semantic(diagnostics.AssignmentToImmutable, a.Position, "%q is not mutable", a.Identifier)
	}
	val, d := in.evalExpression(scope, a.Expression)
	if d != nil {
		return nil, d
	}
	v.Value = val
	v.Initialized = true
	in.Tracer.Line(fmt.Sprintf("Assignment %s = %s", a.Identifier, val.Text()))
	return nil, nil
}

func (in *Interpreter) execConditional(scope *Scope, c *ast.Conditional) (*controlReturn, *diagnostics.Diagnostic) {
	cond, d := in.evalExpression(scope, c.Condition)
	if d != nil {
		return nil, d
	}
	b, d2 := CoerceBool(cond, c.Position)
	if d2 != nil {
		return nil, d2
	}
	in.Tracer.Line(fmt.Sprintf("Conditional %t", b))
	if b {
		return in.execBlock(scope, c.Then)
	}
	if c.Else != nil {
		return in.execBlock(scope, c.Else)
	}
	return nil, nil
}

func (in *Interpreter) execWhileLoop(scope *Scope, w *ast.WhileLoop) (*controlReturn, *diagnostics.Diagnostic) {
	for {
		cond, d := in.evalExpression(scope, w.Condition)
		if d != nil {
			return nil, d
		}
		b, d2 := CoerceBool(cond, w.Position)
		if d2 != nil {
			return nil, d2
		}
		if !b {
			return nil, nil
		}
		in.Tracer.Line(fmt.Sprintf("While %t", b))
		ctrl, d3 := in.execBlock(scope, w.Body)
		if d3 != nil {
			return nil, d3
		}
		if ctrl != nil {
			return ctrl, nil
		}
	}
}

func (in *Interpreter) execReturn(scope *Scope, r *ast.Return) (*controlReturn, *diagnostics.Diagnostic) {
	if !scope.valueExpected {
		if r.Expression != nil {
			if _, d := in.evalExpression(scope, r.Expression); d != nil {
				return nil, d
			}
		}
		in.Tracer.Line("Return")
		return &controlReturn{}, nil
	}

	if r.Expression == nil {
		return nil, diagnostics.Semantic(diagnostics.ReturnValueRequired, r.Position, "this function must return a value")
	}
	val, d := in.evalExpression(scope, r.Expression)
	if d != nil {
		return nil, d
	}
	in.Tracer.Line(fmt.Sprintf("Return %s", val.Text()))
	return &controlReturn{Value: val, HasValue: true}, nil
}

func (in *Interpreter) execFunctionCallStatement(scope *Scope, s *ast.FunctionCallStatement) (*controlReturn, *diagnostics.Diagnostic) {
	in.Tracer.Line("FunctionCallStatement")
	_, _, d := in.evalCall(scope, s.Call, false)
	if d != nil {
		return nil, d
	}
	return nil, nil
}
