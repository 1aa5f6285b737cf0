package interpreter

import (
	"fmt"
	"strings"

	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/config"
	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/token"
	"github.com/ambitlang/ambit/internal/tracer"
)

// Interpreter walks a parsed Program, starting from its Main function.
// CallStack tracks active function invocations (trace indentation is kept
// by Tracer itself); Functions indexes top-level definitions by name for call dispatch.
type Interpreter struct {
	Program   *ast.Program
	Functions map[string]*ast.FunctionDefinition
	CallStack []CallFrame
	Tracer    *tracer.Tracer
}

// New builds an Interpreter over program, writing its execution trace to tr.
func New(program *ast.Program, tr *tracer.Tracer) *Interpreter {
	fns := make(map[string]*ast.FunctionDefinition, len(program.Functions))
	for _, fd := range program.Functions {
		fns[fd.Identifier] = fd
	}
	return &Interpreter{Program: program, Functions: fns, Tracer: tr}
}

// controlReturn signals that a Return statement ran, unwinding block
// execution up to the enclosing function call dispatch.
type controlReturn struct {
	Value    Value
	HasValue bool
}

// Run locates Main and dispatches it with an empty argument list. A
// missing return from Main is tolerated; any other fatal diagnostic is
// returned to the caller (the CLI entry point) to report and exit on.
func (in *Interpreter) Run() *diagnostics.Diagnostic {
	main, ok := in.Functions[config.EntryFunctionName]
	if !ok {
		return diagnostics.Semantic(diagnostics.MainNotFound, token.Position{Line: 1, Column: 1},
			"entry function %q not found", config.EntryFunctionName)
	}
	_, _, d := in.callNamed(main, nil, true, main.Position)
	return d
}

// callNamed dispatches a call to a top-level function definition: pushes a
// call frame, creates a fresh root scope pre-populated with parameters,
// runs the body, and pops the frame.
func (in *Interpreter) callNamed(fd *ast.FunctionDefinition, args []Value, valueExpected bool, pos token.Position) (Value, bool, *diagnostics.Diagnostic) {
	if len(args) != len(fd.Parameters) {
		return Value{}, false, diagnostics.Semantic(diagnostics.ArityMismatch, pos,
			"function %q expects %d argument(s), got %d", fd.Identifier, len(fd.Parameters), len(args))
	}

	in.Tracer.Enter(in.callTraceLine(fd.Identifier, args))
	in.PushCall(fd.Identifier, pos)

	scope := NewScope(nil, valueExpected)
	for i, p := range fd.Parameters {
		scope.Declare(p.Mutable, p.Identifier, args[i])
	}

	ctrl, d := in.execStatements(scope, fd.Body.Statements)

	in.PopCall()
	in.Tracer.Leave()

	if d != nil {
		return Value{}, false, d
	}
	if ctrl == nil || !ctrl.HasValue {
		if valueExpected && fd.Identifier != config.EntryFunctionName {
			return Value{}, false, diagnostics.Semantic(diagnostics.ReturnedNoValueWhereExpected, pos,
				"call to %q expected a return value but none was produced", fd.Identifier)
		}
		return Value{}, false, nil
	}
	return ctrl.Value, true, nil
}

// callFunctionValue dispatches a call to a first-class function value,
// handling bound arguments and (if composed) the composed-after call.
func (in *Interpreter) callFunctionValue(f *FunctionValue, callArgs []Value, valueExpected bool, pos token.Position) (Value, bool, *diagnostics.Diagnostic) {
	all := make([]Value, 0, len(f.BoundArguments)+len(callArgs))
	all = append(all, f.BoundArguments...)
	all = append(all, callArgs...)

	expected := f.arity()
	if len(all) != expected {
		return Value{}, false, diagnostics.Semantic(diagnostics.ArityMismatch, pos,
			"function value expects %d argument(s), got %d", expected, len(all))
	}

	if f.ComposedOf != nil {
		result, hasValue, d := in.callFunctionValue(f.ComposedOf.Function, all, true, pos)
		if d != nil {
			return Value{}, false, d
		}
		if !hasValue {
			return Value{}, false, diagnostics.Semantic(diagnostics.ReturnedNoValueWhereExpected, pos,
				"composed function call expected a return value but none was produced")
		}
		all = []Value{result}
	}

	in.Tracer.Enter(in.callTraceLine("Function", all))
	in.PushCall("<function value>", pos)

	scope := NewScope(nil, valueExpected)
	for i, p := range f.Parameters {
		scope.Declare(p.Mutable, p.Identifier, all[i])
	}

	ctrl, d := in.execStatements(scope, f.Body.Statements)

	in.PopCall()
	in.Tracer.Leave()

	if d != nil {
		return Value{}, false, d
	}
	if ctrl == nil || !ctrl.HasValue {
		if valueExpected {
			return Value{}, false, diagnostics.Semantic(diagnostics.ReturnedNoValueWhereExpected, pos,
				"function call expected a return value but none was produced")
		}
		return Value{}, false, nil
	}
	return ctrl.Value, true, nil
}

func (in *Interpreter) callTraceLine(name string, args []Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Text()
	}
	return fmt.Sprintf("Function: %s Arguments: %s", name, strings.Join(parts, ", "))
}

// evalCall resolves and dispatches a FunctionCall node: first against
// top-level definitions, then against a variable holding a function value.
func (in *Interpreter) evalCall(scope *Scope, call *ast.FunctionCall, valueExpected bool) (Value, bool, *diagnostics.Diagnostic) {
	args := make([]Value, len(call.Arguments))
	for i, a := range call.Arguments {
		v, d := in.evalExpression(scope, a)
		if d != nil {
			return Value{}, false, d
		}
		args[i] = v
	}

	if fd, ok := in.Functions[call.Identifier]; ok {
		return in.callNamed(fd, args, valueExpected, call.Position)
	}

	_, v := scope.Lookup(call.Identifier)
	if v != nil && v.Initialized && v.Value.Kind == KindFunction {
		return in.callFunctionValue(v.Value.Function, args, valueExpected, call.Position)
	}

	return Value{}, false, diagnostics.Semantic(diagnostics.UnknownIdentifier, call.Position,
		"%q is not a defined function or function-valued variable", call.Identifier)
}

// resolveFunctionValue looks up a bare identifier as a Bindable: a
// variable's current value if bound, else the named top-level function
// wrapped as a function value.
func (in *Interpreter) resolveFunctionValue(scope *Scope, name string, pos token.Position) (Value, *diagnostics.Diagnostic) {
	_, v := scope.Lookup(name)
	if v != nil {
		if !v.Initialized {
			return Value{}, diagnostics.Semantic(diagnostics.UninitializedVariable, pos, "variable %q is not initialized", name)
		}
		return v.Value, nil
	}
	if fd, ok := in.Functions[name]; ok {
		return FunctionValueOf(fd.Parameters, fd.Body), nil
	}
	return Value{}, diagnostics.Semantic(diagnostics.UnknownIdentifier, pos, "%q is not a defined variable or function", name)
}
