// Package parser implements a recursive-descent parser for the Ambit
// grammar: one method per production, pulling tokens from a
// pipeline.TokenStream with one token of lookahead, plus a bounded scan
// (looksLikeFunctionLiteral) to tell a function literal from a grouped
// func expression.
package parser

import (
	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/pipeline"
	"github.com/ambitlang/ambit/internal/token"
)

// Parser holds parsing state: the current and lookahead token, plus the
// pipeline context diagnostics are reported into.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	// aborted is set once a hard ("expected X") failure has been reported;
	// ParseProgram stops consuming further function definitions but still
	// returns the partial program already built.
	aborted bool
}

// New creates a Parser pulling from stream, reporting into ctx.
func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	peeked := p.stream.Peek(1)
	if len(peeked) > 0 {
		p.peekToken = peeked[0]
	} else {
		p.peekToken = token.New(token.EndOfFile, p.curToken.Position)
	}
	p.stream.Next()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expect verifies the current token's type, reports a fatal syntax
// diagnostic and marks the parser aborted if it doesn't match, and
// otherwise advances past it.
func (p *Parser) expect(t token.Type) bool {
	if !p.curTokenIs(t) {
		p.fail("expected %s, found %s", t, p.curToken.Type)
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) fail(format string, args ...interface{}) {
	if p.aborted {
		return
	}
	p.aborted = true
	p.ctx.AddDiagnostics(diagnostics.Syntax(p.curToken.Position, format, args...))
}

// ParseProgram parses `program = { function_definition }, EOF ;`. A hard
// failure inside any function definition aborts parsing immediately but the
// partial list of already-parsed functions is still returned.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EndOfFile) && !p.aborted {
		fn := p.parseFunctionDefinition()
		if fn == nil {
			break
		}
		program.Functions = append(program.Functions, fn)
	}
	return program
}

// parseFunctionDefinition parses
// `function_definition = "func", identifier, "(", parameters, ")", block ;`
func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	if !p.curTokenIs(token.Func) {
		p.fail("expected %s, found %s", token.Func, p.curToken.Type)
		return nil
	}
	pos := p.curToken.Position
	p.nextToken()

	if !p.curTokenIs(token.Identifier) {
		p.fail("expected function name, found %s", p.curToken.Type)
		return nil
	}
	name := p.curToken.Text
	p.nextToken()

	if !p.expect(token.LParen) {
		return nil
	}
	params := p.parseParameters()
	if p.aborted {
		return nil
	}
	if !p.expect(token.RParen) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FunctionDefinition{Identifier: name, Parameters: params, Body: body, Position: pos}
}

// parseParameters parses `parameters = [ parameter, { ",", parameter } ] ;`
func (p *Parser) parseParameters() []*ast.Parameter {
	var params []*ast.Parameter
	if p.curTokenIs(token.RParen) {
		return params
	}
	for {
		param := p.parseParameter()
		if param == nil {
			return nil
		}
		params = append(params, param)
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	return params
}

// parseParameter parses `parameter = [ "mut" ], identifier ;`
func (p *Parser) parseParameter() *ast.Parameter {
	pos := p.curToken.Position
	mutable := false
	if p.curTokenIs(token.Mut) {
		mutable = true
		p.nextToken()
	}
	if !p.curTokenIs(token.Identifier) {
		p.fail("expected parameter name, found %s", p.curToken.Type)
		return nil
	}
	name := p.curToken.Text
	p.nextToken()
	return &ast.Parameter{Identifier: name, Mutable: mutable, Position: pos}
}

// parseBlock parses `block = "{", { statement }, "}" ;`
func (p *Parser) parseBlock() *ast.Block {
	if !p.curTokenIs(token.LBrace) {
		p.fail("expected %s, found %s", token.LBrace, p.curToken.Type)
		return nil
	}
	pos := p.curToken.Position
	p.nextToken()

	block := &ast.Block{Position: pos}
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EndOfFile) && !p.aborted {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	if !p.expect(token.RBrace) {
		return nil
	}
	return block
}

// parseArguments parses `arguments = [ expression, { ",", expression } ] ;`
func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression
	if p.curTokenIs(token.RParen) {
		return args
	}
	for {
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	return args
}
