package pipeline

import (
	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/diagnostics"
)

// PipelineContext holds all the data passed between pipeline stages: source
// text in, token stream and AST in the middle, diagnostics accumulated
// along the way.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	AstRoot     *ast.Program
	Diagnostics []*diagnostics.Diagnostic
	Trace       string
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// AddDiagnostics appends diagnostics raised by a pipeline stage.
func (c *PipelineContext) AddDiagnostics(diags ...*diagnostics.Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, diags...)
}

// HasTerminatingDiagnostic reports whether any accumulated diagnostic
// should stop the pipeline from advancing to the next stage.
func (c *PipelineContext) HasTerminatingDiagnostic() bool {
	for _, d := range c.Diagnostics {
		if d.Terminating {
			return true
		}
	}
	return false
}
