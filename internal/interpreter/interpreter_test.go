package interpreter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambitlang/ambit/internal/interpreter"
	"github.com/ambitlang/ambit/internal/lexer"
	"github.com/ambitlang/ambit/internal/parser"
	"github.com/ambitlang/ambit/internal/pipeline"
)

func run(t *testing.T, src string) *pipeline.PipelineContext {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	pl := pipeline.New(&lexer.LexerProcessor{}, &parser.Processor{}, &interpreter.Processor{})
	return pl.Run(ctx)
}

func TestMainNotFound(t *testing.T) {
	ctx := run(t, `func NotMain() { }`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "MainNotFound", string(ctx.Diagnostics[0].Code))
}

func TestDeclarationAndReturnTrace(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var a = 42;
		return a;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration a = 42")
	assert.Contains(t, ctx.Trace, "Return 42")
	assert.Contains(t, ctx.Trace, "Function: Main Arguments:")
}

func TestAssignmentRequiresMutable(t *testing.T) {
	ctx := run(t, `func Main() {
		var a = 1;
		a = 2;
		return a;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "AssignmentToImmutable", string(ctx.Diagnostics[0].Code))
}

func TestConditionalAndWhileTrace(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var i = 0;
		while (i < 3) {
			i = i + 1;
		}
		if (i == 3) {
			return true;
		} else {
			return false;
		}
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.True(t, strings.Contains(ctx.Trace, "While true"))
	assert.Contains(t, ctx.Trace, "Conditional true")
	assert.Contains(t, ctx.Trace, "Return true")
}

func TestNamedFunctionCallArityMismatch(t *testing.T) {
	ctx := run(t, `
	func add(a, b) { return a + b; }
	func Main() {
		mut var x = add(1);
		return x;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "ArityMismatch", string(ctx.Diagnostics[0].Code))
}

func TestFunctionValueBindAndCompose(t *testing.T) {
	ctx := run(t, `
	func add(a, b) { return a + b; }
	func double(x) { return x * 2; }
	func Main() {
		mut var f = [ add << (1) >> double ];
		return f(4);
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Return 10")
}

func TestCoercionNumberPlusString(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var x = 1 + "2";
		return x;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Return 3")
}

func TestCoercionStringReplication(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var x = 3 * "ab";
		return x;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Return ababab")
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var x = 1 / 0;
		return x;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "DivisionByZero", string(ctx.Diagnostics[0].Code))
}

func TestMainToleratesNoReturnStatement(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var a = 1;
	}`)
	require.Empty(t, ctx.Diagnostics, "Main tolerates never executing a return statement")
}

func TestBareReturnWhenValueExpectedIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		return;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "ReturnValueRequired", string(ctx.Diagnostics[0].Code))
}

func TestUnknownIdentifierIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		return undefinedVar;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "UnknownIdentifier", string(ctx.Diagnostics[0].Code))
}

func TestRecursion(t *testing.T) {
	ctx := run(t, `
	func F(n) {
		if (n <= 1) { return 1; }
		return n * F(n - 1);
	}
	func Main() {
		var x = F(5);
		return x;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration x = 120")
}

func TestPartialApplication(t *testing.T) {
	ctx := run(t, `
	func Add(a, b) { return a + b; }
	func Main() {
		var f = [ Add << (10) ];
		var y = f(5);
		return y;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration y = 15")
}

func TestComposition(t *testing.T) {
	ctx := run(t, `
	func Inc(x) { return x + 1; }
	func Dbl(x) { return x * 2; }
	func Main() {
		var g = [ Inc >> Dbl ];
		var z = g(3);
		return z;
	}`)
	require.Empty(t, ctx.Diagnostics)
	// 3 -> Inc -> 4 -> Dbl -> 8
	assert.Contains(t, ctx.Trace, "Declaration z = 8")
}

func TestComposeRightSideMustBeUnary(t *testing.T) {
	ctx := run(t, `
	func Inc(x) { return x + 1; }
	func Add(a, b) { return a + b; }
	func Main() {
		var g = [ Inc >> Add ];
		return 0;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "FunctionComposeArity", string(ctx.Diagnostics[0].Code))
}

func TestFunctionLiteralCall(t *testing.T) {
	ctx := run(t, `func Main() {
		var triple = [ (x) { return x * 3; } ];
		return triple(7);
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Return 21")
}

func TestReturnInNestedBlockTerminatesFunction(t *testing.T) {
	ctx := run(t, `
	func F(n) {
		if (n > 0) {
			return 1;
		}
		return 2;
	}
	func Main() {
		var x = F(5) * 10;
		return x;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration x = 10")
}

func TestRedeclarationInVisibleScopeIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		var a = 1;
		if (true) {
			var a = 2;
		}
		return a;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "RedeclaredVariable", string(ctx.Diagnostics[0].Code))
}

func TestDeclarationShadowingFunctionNameIsFatal(t *testing.T) {
	ctx := run(t, `
	func helper() { return 1; }
	func Main() {
		var helper = 1;
		return helper;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "NameClashWithFunction", string(ctx.Diagnostics[0].Code))
}

func TestUninitializedVariableUseIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		mut var a;
		return a;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "UninitializedVariable", string(ctx.Diagnostics[0].Code))
}

func TestBlockScopeEndsAtBlockExit(t *testing.T) {
	ctx := run(t, `func Main() {
		if (true) {
			var b = 1;
		}
		var b = 2;
		return b;
	}`)
	require.Empty(t, ctx.Diagnostics, "a block-local variable should not survive its block")
	assert.Contains(t, ctx.Trace, "Declaration b = 2")
}

func TestCoercionBoolPlusString(t *testing.T) {
	ctx := run(t, `func Main() {
		var s = true + "!";
		return s;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration s = true!")
}

func TestStringReplicationByZeroYieldsEmpty(t *testing.T) {
	ctx := run(t, `func Main() {
		var s = 0 * "ab" + "x";
		return s;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Declaration s = x")
}

func TestStringReplicationByNegativeIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		var s = -1 * "ab";
		return s;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "TypeNotCoercible", string(ctx.Diagnostics[0].Code))
}

func TestLogicalNotOnIntIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		var b = !1;
		return b;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "TypeNotCoercible", string(ctx.Diagnostics[0].Code))
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	ctx := run(t, `
	func Boom() { return true; }
	func Main() {
		if (true || Boom()) {
			return 1;
		}
		return 2;
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.NotContains(t, ctx.Trace, "Function: Boom")
	assert.Contains(t, ctx.Trace, "Return 1")
}

func TestBindOnNonFunctionIsFatal(t *testing.T) {
	ctx := run(t, `func Main() {
		var n = 1;
		var f = [ n << (2) ];
		return 0;
	}`)
	require.Len(t, ctx.Diagnostics, 1)
	assert.Equal(t, "FunctionBindOnNonFunction", string(ctx.Diagnostics[0].Code))
}

func TestBoundArgumentsAccumulateAcrossBinds(t *testing.T) {
	ctx := run(t, `
	func Add3(a, b, c) { return a + b + c; }
	func Main() {
		var f = [ (Add3 << (1)) << (2) ];
		return f(3);
	}`)
	require.Empty(t, ctx.Diagnostics)
	assert.Contains(t, ctx.Trace, "Return 6")
}

func TestNestedBlockTraceIsIndented(t *testing.T) {
	ctx := run(t, `func Main() {
		if (true) {
			var a = 1;
		}
		return 0;
	}`)
	require.Empty(t, ctx.Diagnostics)
	// Main's body is one level deep; the conditional's block one deeper.
	assert.Contains(t, ctx.Trace, "\n  Conditional true\n")
	assert.Contains(t, ctx.Trace, "\n    Declaration a = 1\n")
}
