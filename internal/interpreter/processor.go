package interpreter

import (
	"strings"

	"github.com/ambitlang/ambit/internal/pipeline"
	"github.com/ambitlang/ambit/internal/tracer"
)

// Processor runs the Interpreter over ctx.AstRoot, installing the
// resulting execution trace and forwarding any fatal diagnostic.
type Processor struct{}

func (ip *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasTerminatingDiagnostic() {
		return ctx
	}

	var out strings.Builder
	tr := tracer.New(&out)

	in := New(ctx.AstRoot, tr)
	if d := in.Run(); d != nil {
		ctx.AddDiagnostics(d)
	}

	tr.Flush()
	ctx.Trace = out.String()
	return ctx
}
