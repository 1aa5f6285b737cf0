package parser

import (
	"github.com/ambitlang/ambit/internal/ast"
	"github.com/ambitlang/ambit/internal/token"
)

// parseExpression parses `expression = standard_expression | "[", func_expression, "]" ;`
func (p *Parser) parseExpression() ast.Expression {
	if p.curTokenIs(token.LSquare) {
		p.nextToken()
		fe := p.parseFuncExpression()
		if fe == nil {
			return nil
		}
		if !p.expect(token.RSquare) {
			return nil
		}
		return fe
	}
	return p.parseStandardExpression()
}

// parseStandardExpression parses
// `standard_expression = conjunction, { "||", conjunction } ;`
func (p *Parser) parseStandardExpression() ast.Expression {
	pos := p.curToken.Position
	first := p.parseConjunction()
	if first == nil {
		return nil
	}
	conjunctions := []*ast.Conjunction{first}
	for p.curTokenIs(token.LogicalOr) {
		p.nextToken()
		next := p.parseConjunction()
		if next == nil {
			return nil
		}
		conjunctions = append(conjunctions, next)
	}
	return &ast.StandardExpression{Conjunctions: conjunctions, Position: pos}
}

// parseConjunction parses `conjunction = relation, { "&&", relation } ;`
func (p *Parser) parseConjunction() *ast.Conjunction {
	pos := p.curToken.Position
	first := p.parseRelation()
	if first == nil {
		return nil
	}
	relations := []*ast.Relation{first}
	for p.curTokenIs(token.LogicalAnd) {
		p.nextToken()
		next := p.parseRelation()
		if next == nil {
			return nil
		}
		relations = append(relations, next)
	}
	return &ast.Conjunction{Relations: relations, Position: pos}
}

var relOps = map[token.Type]ast.RelationOp{
	token.Less:         ast.RelLt,
	token.LessEqual:    ast.RelLE,
	token.Greater:      ast.RelGt,
	token.GreaterEqual: ast.RelGE,
	token.Equal:        ast.RelEq,
	token.NotEqual:     ast.RelNE,
}

// parseRelation parses `relation = additive, [ rel_op, additive ] ;`
func (p *Parser) parseRelation() *ast.Relation {
	pos := p.curToken.Position
	first := p.parseAdditive()
	if first == nil {
		return nil
	}
	rel := &ast.Relation{First: first, Position: pos}
	if op, ok := relOps[p.curToken.Type]; ok {
		rel.Operator = op
		p.nextToken()
		second := p.parseAdditive()
		if second == nil {
			return nil
		}
		rel.SecondAdditive = second
	}
	return rel
}

// parseAdditive parses
// `additive = [ "-" ], multiplicative, { ("+"|"-"), multiplicative } ;`
func (p *Parser) parseAdditive() *ast.Additive {
	pos := p.curToken.Position
	negated := false
	if p.curTokenIs(token.Minus) {
		negated = true
		p.nextToken()
	}
	first := p.parseMultiplicative()
	if first == nil {
		return nil
	}
	add := &ast.Additive{Negated: negated, Multiplicatives: []*ast.Multiplicative{first}, Position: pos}
	for p.curTokenIs(token.Plus) || p.curTokenIs(token.Minus) {
		op := string(p.curToken.Type)
		p.nextToken()
		next := p.parseMultiplicative()
		if next == nil {
			return nil
		}
		add.Operators = append(add.Operators, op)
		add.Multiplicatives = append(add.Multiplicatives, next)
	}
	return add
}

// parseMultiplicative parses `multiplicative = factor, { ("*"|"/"), factor } ;`
func (p *Parser) parseMultiplicative() *ast.Multiplicative {
	pos := p.curToken.Position
	first := p.parseFactor()
	if first == nil {
		return nil
	}
	mul := &ast.Multiplicative{Factors: []*ast.Factor{first}, Position: pos}
	for p.curTokenIs(token.Asterisk) || p.curTokenIs(token.Slash) {
		op := string(p.curToken.Type)
		p.nextToken()
		next := p.parseFactor()
		if next == nil {
			return nil
		}
		mul.Operators = append(mul.Operators, op)
		mul.Factors = append(mul.Factors, next)
	}
	return mul
}

// parseFactor parses
// `factor = [ "!" ], ( literal | "(" standard_expression ")"
//                    | identifier [ "(" arguments ")" ] ) ;`
func (p *Parser) parseFactor() *ast.Factor {
	pos := p.curToken.Position
	negated := false
	if p.curTokenIs(token.LogicalNot) {
		negated = true
		p.nextToken()
	}

	f := &ast.Factor{Negated: negated, Position: pos}

	switch p.curToken.Type {
	case token.Integer:
		f.Literal = &ast.Literal{Kind: ast.LiteralInt, IntValue: p.curToken.IntValue, Position: p.curToken.Position}
		p.nextToken()
	case token.Float:
		f.Literal = &ast.Literal{Kind: ast.LiteralFloat, FloatValue: p.curToken.FloatValue, Position: p.curToken.Position}
		p.nextToken()
	case token.String:
		f.Literal = &ast.Literal{Kind: ast.LiteralString, StringValue: p.curToken.Text, Position: p.curToken.Position}
		p.nextToken()
	case token.Boolean:
		f.Literal = &ast.Literal{Kind: ast.LiteralBool, BoolValue: p.curToken.BoolValue, Position: p.curToken.Position}
		p.nextToken()
	case token.LParen:
		p.nextToken()
		inner := p.parseStandardExpression()
		if inner == nil {
			return nil
		}
		se, ok := inner.(*ast.StandardExpression)
		if !ok {
			p.fail("expected standard expression inside parentheses")
			return nil
		}
		f.Parens = se
		if !p.expect(token.RParen) {
			return nil
		}
	case token.Identifier:
		name := p.curToken.Text
		p.nextToken()
		if p.curTokenIs(token.LParen) {
			p.nextToken()
			args := p.parseArguments()
			if args == nil && p.aborted {
				return nil
			}
			if !p.expect(token.RParen) {
				return nil
			}
			f.Call = &ast.FunctionCall{Identifier: name, Arguments: args, Position: pos}
		} else {
			f.Identifier = name
		}
	default:
		p.fail("expected literal, '(', or identifier, found %s", p.curToken.Type)
		return nil
	}

	return f
}

// parseFuncExpression parses `func_expression = composable, { ">>", composable } ;`
func (p *Parser) parseFuncExpression() *ast.FuncExpression {
	pos := p.curToken.Position
	first := p.parseComposable()
	if first == nil {
		return nil
	}
	fe := &ast.FuncExpression{Composables: []*ast.Composable{first}, Position: pos}
	for p.curTokenIs(token.FunctionCompose) {
		p.nextToken()
		next := p.parseComposable()
		if next == nil {
			return nil
		}
		fe.Composables = append(fe.Composables, next)
	}
	return fe
}

// parseComposable parses `composable = bindable, [ "<<", "(", arguments, ")" ] ;`
func (p *Parser) parseComposable() *ast.Composable {
	pos := p.curToken.Position
	b := p.parseBindable()
	if b == nil {
		return nil
	}
	c := &ast.Composable{Bindable: b, Position: pos}
	if p.curTokenIs(token.FunctionBind) {
		c.HasBind = true
		p.nextToken()
		if !p.expect(token.LParen) {
			return nil
		}
		args := p.parseArguments()
		if args == nil && p.aborted {
			return nil
		}
		c.Arguments = args
		if !p.expect(token.RParen) {
			return nil
		}
	}
	return c
}

// parseBindable parses
// `bindable = function_literal | identifier [ "(" arguments ")" ]
//           | "(", func_expression, ")" ;`
func (p *Parser) parseBindable() *ast.Bindable {
	pos := p.curToken.Position

	if p.curTokenIs(token.LParen) {
		// Ambiguous with function_literal ("(" parameters ")" block): a
		// function literal's parameter list contains only (optionally
		// "mut"-prefixed) identifiers and is immediately followed by "{".
		if p.looksLikeFunctionLiteral() {
			fl := p.parseFunctionLiteral()
			if fl == nil {
				return nil
			}
			return &ast.Bindable{FunctionLiteral: fl, Position: pos}
		}
		p.nextToken()
		fe := p.parseFuncExpression()
		if fe == nil {
			return nil
		}
		if !p.expect(token.RParen) {
			return nil
		}
		return &ast.Bindable{FuncExpression: fe, Position: pos}
	}

	if p.curTokenIs(token.Identifier) {
		name := p.curToken.Text
		p.nextToken()
		if p.curTokenIs(token.LParen) {
			p.nextToken()
			args := p.parseArguments()
			if args == nil && p.aborted {
				return nil
			}
			if !p.expect(token.RParen) {
				return nil
			}
			return &ast.Bindable{Call: &ast.FunctionCall{Identifier: name, Arguments: args, Position: pos}, Position: pos}
		}
		return &ast.Bindable{Identifier: name, Position: pos}
	}

	p.fail("expected function literal, identifier, or '(', found %s", p.curToken.Type)
	return nil
}

// looksLikeFunctionLiteral performs the one bounded lookahead the grammar's
// bindable/func_expression ambiguity needs: scan the balanced parenthesised
// group starting at the current "(" and check whether "{" immediately
// follows its matching ")".
func (p *Parser) looksLikeFunctionLiteral() bool {
	// curToken is the opening "("; the scan covers the buffered peekToken
	// first, then the stream's own lookahead (which sits one token past it).
	peeked := append([]token.Token{p.peekToken}, p.stream.Peek(parameterLookaheadLimit)...)
	depth := 1
	for i, tok := range peeked {
		switch tok.Type {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				if i+1 < len(peeked) {
					return peeked[i+1].Type == token.LBrace
				}
				return false
			}
		case token.EndOfFile:
			return false
		}
	}
	return false
}

const parameterLookaheadLimit = 64

// parseFunctionLiteral parses `function_literal = "(", parameters, ")", block ;`
func (p *Parser) parseFunctionLiteral() *ast.FunctionLiteral {
	pos := p.curToken.Position
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
	return &ast.FunctionLiteral{Parameters: params, Body: body, Position: pos}
}
