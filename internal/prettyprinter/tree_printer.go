// Package prettyprinter renders an Ambit AST as an indented tree, used by
// the CLI's --dump-ast flag for debugging parse results.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ambitlang/ambit/internal/ast"
)

// TreePrinter walks an AST with ast.Visitor, writing one indented line per
// node.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.line("Program")
	p.indent++
	for _, fn := range n.Functions {
		fn.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitFunctionDefinition(n *ast.FunctionDefinition) {
	params := make([]string, len(n.Parameters))
	for i, pr := range n.Parameters {
		params[i] = paramString(pr)
	}
	p.line(fmt.Sprintf("FunctionDefinition %s(%s)", n.Identifier, strings.Join(params, ", ")))
	p.indent++
	n.Body.Accept(p)
	p.indent--
}

func paramString(pr *ast.Parameter) string {
	if pr.Mutable {
		return "mut " + pr.Identifier
	}
	return pr.Identifier
}

func (p *TreePrinter) VisitBlock(n *ast.Block) {
	p.line("Block")
	p.indent++
	for _, stmt := range n.Statements {
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.line(fmt.Sprintf("FunctionCall %s (%d arg(s))", n.Identifier, len(n.Arguments)))
	p.indent++
	for _, a := range n.Arguments {
		a.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitFunctionCallStatement(n *ast.FunctionCallStatement) {
	p.line("FunctionCallStatement")
	p.indent++
	n.Call.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitConditional(n *ast.Conditional) {
	p.line("Conditional")
	p.indent++
	n.Condition.Accept(p)
	n.Then.Accept(p)
	if n.Else != nil {
		n.Else.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitWhileLoop(n *ast.WhileLoop) {
	p.line("WhileLoop")
	p.indent++
	n.Condition.Accept(p)
	n.Body.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitReturn(n *ast.Return) {
	p.line("Return")
	if n.Expression != nil {
		p.indent++
		n.Expression.Accept(p)
		p.indent--
	}
}

func (p *TreePrinter) VisitDeclaration(n *ast.Declaration) {
	mut := ""
	if n.Mutable {
		mut = "mut "
	}
	p.line(fmt.Sprintf("Declaration %s%s", mut, n.Identifier))
	if n.Initializer != nil {
		p.indent++
		n.Initializer.Accept(p)
		p.indent--
	}
}

func (p *TreePrinter) VisitAssignment(n *ast.Assignment) {
	p.line("Assignment " + n.Identifier)
	p.indent++
	n.Expression.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitStandardExpression(n *ast.StandardExpression) {
	p.line(fmt.Sprintf("StandardExpression (%d conjunction(s))", len(n.Conjunctions)))
	p.indent++
	for _, c := range n.Conjunctions {
		c.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitConjunction(n *ast.Conjunction) {
	p.line(fmt.Sprintf("Conjunction (%d relation(s))", len(n.Relations)))
	p.indent++
	for _, r := range n.Relations {
		r.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitRelation(n *ast.Relation) {
	label := "Relation"
	if n.Operator != "" {
		label = fmt.Sprintf("Relation %s", n.Operator)
	}
	p.line(label)
	p.indent++
	n.First.Accept(p)
	if n.SecondAdditive != nil {
		n.SecondAdditive.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitAdditive(n *ast.Additive) {
	neg := ""
	if n.Negated {
		neg = " (negated)"
	}
	p.line("Additive" + neg + " " + strings.Join(n.Operators, " "))
	p.indent++
	for _, m := range n.Multiplicatives {
		m.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitMultiplicative(n *ast.Multiplicative) {
	p.line("Multiplicative " + strings.Join(n.Operators, " "))
	p.indent++
	for _, f := range n.Factors {
		f.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitFactor(n *ast.Factor) {
	neg := ""
	if n.Negated {
		neg = " (not)"
	}
	p.line("Factor" + neg)
	p.indent++
	switch {
	case n.Literal != nil:
		n.Literal.Accept(p)
	case n.Parens != nil:
		n.Parens.Accept(p)
	case n.Call != nil:
		n.Call.Accept(p)
	default:
		p.line("Identifier " + n.Identifier)
	}
	p.indent--
}

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	switch n.Kind {
	case ast.LiteralBool:
		p.line(fmt.Sprintf("Literal bool %t", n.BoolValue))
	case ast.LiteralInt:
		p.line(fmt.Sprintf("Literal int %d", n.IntValue))
	case ast.LiteralFloat:
		p.line(fmt.Sprintf("Literal float %g", n.FloatValue))
	case ast.LiteralString:
		p.line(fmt.Sprintf("Literal string %q", n.StringValue))
	}
}

func (p *TreePrinter) VisitFuncExpression(n *ast.FuncExpression) {
	p.line(fmt.Sprintf("FuncExpression (%d composable(s))", len(n.Composables)))
	p.indent++
	for _, c := range n.Composables {
		c.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitComposable(n *ast.Composable) {
	label := "Composable"
	if n.HasBind {
		label = fmt.Sprintf("Composable (bind, %d arg(s))", len(n.Arguments))
	}
	p.line(label)
	p.indent++
	n.Bindable.Accept(p)
	for _, a := range n.Arguments {
		a.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitBindable(n *ast.Bindable) {
	p.line("Bindable")
	p.indent++
	switch {
	case n.FunctionLiteral != nil:
		n.FunctionLiteral.Accept(p)
	case n.FuncExpression != nil:
		n.FuncExpression.Accept(p)
	case n.Call != nil:
		n.Call.Accept(p)
	default:
		p.line("Identifier " + n.Identifier)
	}
	p.indent--
}

func (p *TreePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	params := make([]string, len(n.Parameters))
	for i, pr := range n.Parameters {
		params[i] = paramString(pr)
	}
	p.line(fmt.Sprintf("FunctionLiteral (%s)", strings.Join(params, ", ")))
	p.indent++
	n.Body.Accept(p)
	p.indent--
}

var _ ast.Visitor = (*TreePrinter)(nil)
