package parser

import (
	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/token"
)

// parseStatement parses
// `statement = conditional | while_loop | return_stmt | block
//            | declaration | assignment_or_call_stmt ;`
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.If:
		return p.parseConditional()
	case token.While:
		return p.parseWhileLoop()
	case token.Return:
		return p.parseReturnStatement()
	case token.LBrace:
		return p.parseBlock()
	case token.Var, token.Mut:
		return p.parseDeclaration()
	case token.Identifier:
		return p.parseAssignmentOrCallStatement()
	default:
		p.fail("expected statement, found %s", p.curToken.Type)
		return nil
	}
}

// parseConditional parses
// `conditional = "if", "(", standard_expression, ")", block, [ "else", block ] ;`
func (p *Parser) parseConditional() ast.Statement {
	pos := p.curToken.Position
	p.nextToken() // consume 'if'

	if !p.expect(token.LParen) {
		return nil
	}
	cond := p.parseStandardExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(token.RParen) {
		return nil
	}

	then := p.parseBlock()
	if then == nil {
		return nil
	}

	var alt *ast.Block
	if p.curTokenIs(token.Else) {
		p.nextToken()
		alt = p.parseBlock()
		if alt == nil {
			return nil
		}
	}

	return &ast.Conditional{Condition: cond, Then: then, Else: alt, Position: pos}
}

// parseWhileLoop parses
// `while_loop = "while", "(", standard_expression, ")", block ;`
func (p *Parser) parseWhileLoop() ast.Statement {
	pos := p.curToken.Position
	p.nextToken() // consume 'while'

	if !p.expect(token.LParen) {
		return nil
	}
	cond := p.parseStandardExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(token.RParen) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.WhileLoop{Condition: cond, Body: body, Position: pos}
}

// parseReturnStatement parses `return_stmt = "return", [ expression ], ";" ;`
func (p *Parser) parseReturnStatement() ast.Statement {
	pos := p.curToken.Position
	p.nextToken() // consume 'return'

	var expr ast.Expression
	if !p.curTokenIs(token.Semicolon) {
		expr = p.parseExpression()
		if expr == nil {
			return nil
		}
	}
	if !p.expect(token.Semicolon) {
		return nil
	}
	return &ast.Return{Expression: expr, Position: pos}
}

// parseDeclaration parses
// `declaration = [ "mut" ], "var", identifier, [ "=", expression ], ";" ;`
// An immutable declaration without an initializer is rejected.
func (p *Parser) parseDeclaration() ast.Statement {
	pos := p.curToken.Position
	mutable := false
	if p.curTokenIs(token.Mut) {
		mutable = true
		p.nextToken()
	}
	if !p.expect(token.Var) {
		return nil
	}
	if !p.curTokenIs(token.Identifier) {
		p.fail("expected identifier, found %s", p.curToken.Type)
		return nil
	}
	name := p.curToken.Text
	p.nextToken()

	var init ast.Expression
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		init = p.parseExpression()
		if init == nil {
			return nil
		}
	} else if !mutable {
		p.fail("immutable declaration of '%s' requires an initializer", name)
		return nil
	}

	if !p.expect(token.Semicolon) {
		return nil
	}
	return &ast.Declaration{Mutable: mutable, Identifier: name, Initializer: init, Position: pos}
}

// parseAssignmentOrCallStatement parses
// `assignment_or_call_stmt = identifier, ( "=" expression ";" | "(" arguments ")" ";" ) ;`
func (p *Parser) parseAssignmentOrCallStatement() ast.Statement {
	pos := p.curToken.Position
	name := p.curToken.Text
	p.nextToken() // consume identifier

	switch p.curToken.Type {
	case token.Assign:
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if !p.expect(token.Semicolon) {
			return nil
		}
		return &ast.Assignment{Identifier: name, Expression: expr, Position: pos}

	case token.LParen:
		p.nextToken()
		args := p.parseArguments()
		if args == nil && p.aborted {
			return nil
		}
		if !p.expect(token.RParen) {
			return nil
		}
		if !p.expect(token.Semicolon) {
			return nil
		}
		call := &ast.FunctionCall{Identifier: name, Arguments: args, Position: pos}
		return &ast.FunctionCallStatement{Call: call, Position: pos}

	default:
		p.fail("expected '=' or '(' after identifier, found %s", p.curToken.Type)
		return nil
	}
}
