package pipeline

// Pipeline runs the lexer, parser and interpreter stages in sequence over a
// shared PipelineContext.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run feeds ctx through every stage in order. Stages decide for themselves
// whether an earlier terminating diagnostic means they should not run, so
// diagnostics from one stage never silently hide a later stage's output.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
