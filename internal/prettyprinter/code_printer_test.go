package prettyprinter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/lexer"
	"github.com/ambitlang/ambit/internal/parser"
	"github.com/ambitlang/ambit/internal/pipeline"
	"github.com/ambitlang/ambit/internal/prettyprinter"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	(&lexer.LexerProcessor{}).Process(ctx)
	(&parser.Processor{}).Process(ctx)
	require.Empty(t, ctx.Diagnostics, "unexpected diagnostics: %v", ctx.Diagnostics)
	require.NotNil(t, ctx.AstRoot)
	return ctx.AstRoot
}

func print(prog *ast.Program) string {
	p := prettyprinter.NewCodePrinter()
	prog.Accept(p)
	return p.String()
}

// Canonical text is a fixed point: printing a program and re-parsing its
// output must print back the identical text.
func TestCodePrinterRoundTrip(t *testing.T) {
	sources := []string{
		`func Main() { }`,
		`func Main() { mut var a = 1 + 2 * 3 - 4 / 2; a = -a; }`,
		`func Main() { var s = "a\nb\t\"c\"\\d"; return s; }`,
		`func Main() { var f = 0.5; var g = 2.0; return f < g && f != g || !false; }`,
		`func F(n) { if (n <= 1) { return 1; } return n * F(n - 1); }
		 func Main() { return F(5); }`,
		`func Add(a, mut b) { return a + b; }
		 func Dbl(x) { return x * 2; }
		 func Main() {
			var f = [ Add << (10) >> Dbl ];
			var g = [ (x) { return x; } >> Dbl ];
			var h = [ (f >> Dbl) ];
			return h(1);
		 }`,
		`func Main() {
			while (true == false) { callMe(1, [ helper ], (2 + 3)); }
			{ var inner = 1; }
			return 0;
		 }`,
	}
	for _, src := range sources {
		canonical := print(parse(t, src))
		reprinted := print(parse(t, canonical))
		assert.Equal(t, canonical, reprinted, "source: %s", src)
	}
}
