package lexer

import (
	"github.com/ambitlang/ambit/internal/pipeline"
	"github.com/ambitlang/ambit/internal/token"
)

// staticTokenStream adapts a fully-lexed token slice to pipeline.TokenStream.
// The lexer has no reason to run interleaved with the parser here (source
// files are small scripts, not streamed input), so the whole file is
// tokenized up front and the parser pulls from the resulting slice.
type staticTokenStream struct {
	tokens []token.Token
	pos    int
}

func newStaticTokenStream(tokens []token.Token) *staticTokenStream {
	return &staticTokenStream{tokens: tokens}
}

func (s *staticTokenStream) Next() token.Token {
	tok := s.current()
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *staticTokenStream) Peek(n int) []token.Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	if s.pos >= len(s.tokens) {
		return nil
	}
	return s.tokens[s.pos:end]
}

func (s *staticTokenStream) current() token.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

var _ pipeline.TokenStream = (*staticTokenStream)(nil)

// LexerProcessor runs the Lexer over ctx.SourceCode and installs the
// resulting token stream, forwarding every diagnostic it produced.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	toks, diags := l.Tokens()
	ctx.TokenStream = newStaticTokenStream(toks)
	ctx.AddDiagnostics(diags...)
	return ctx
}
