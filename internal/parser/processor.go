package parser

import (
	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/pipeline"
)

// Processor runs the Parser over ctx.TokenStream and installs the resulting
// Program, forwarding every diagnostic raised along the way. A terminating
// lexical diagnostic aborts parsing with a syntax diagnostic of its own.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	for _, d := range ctx.Diagnostics {
		if d.Terminating {
			ctx.AddDiagnostics(diagnostics.Syntax(d.Position, "cannot parse: tokenization stopped (%s)", d.Code))
			return ctx
		}
	}
	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()
	return ctx
}
