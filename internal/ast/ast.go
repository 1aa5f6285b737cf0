// Package ast defines the syntax tree produced by the parser and walked by
// the interpreter: two tagged-union node families (statements and
// expressions) plus the small set of supporting shapes (Parameter,
// FunctionDefinition, Program) the grammar hangs off of.
package ast

import "github.com/ambitlang/ambit/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() token.Position
	Accept(v Visitor)
}

// Statement is a Node representing one of the statement variants.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node representing one of the expression variants.
type Expression interface {
	Node
	expressionNode()
}

// Program is the ordered list of function definitions that make up a
// source file; it is the root of every AST the parser produces.
type Program struct {
	Functions []*FunctionDefinition
}

func (p *Program) Pos() token.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Position
	}
	return token.Position{Line: 1, Column: 1}
}
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Parameter is a single formal parameter: a name and whether the callee may
// reassign it inside the body.
type Parameter struct {
	Identifier string
	Mutable    bool
	Position   token.Position
}

// FunctionDefinition is a top-level `func name(params) { body }` form.
type FunctionDefinition struct {
	Identifier string
	Parameters []*Parameter
	Body       *Block
	Position   token.Position
}

func (fd *FunctionDefinition) Pos() token.Position { return fd.Position }
func (fd *FunctionDefinition) Accept(v Visitor)    { v.VisitFunctionDefinition(fd) }

// --- Statement variants ---

// Block is an ordered sequence of statements within `{ }`.
type Block struct {
	Statements []Statement
	Position   token.Position
}

func (b *Block) Pos() token.Position { return b.Position }
func (b *Block) Accept(v Visitor)    { v.VisitBlock(b) }
func (b *Block) statementNode()      {}

// FunctionCall is the callee name plus its evaluated argument expressions;
// it is shared between call-as-statement and call-as-factor contexts.
type FunctionCall struct {
	Identifier string
	Arguments  []Expression
	Position   token.Position
}

func (fc *FunctionCall) Pos() token.Position { return fc.Position }
func (fc *FunctionCall) Accept(v Visitor)    { v.VisitFunctionCall(fc) }
func (fc *FunctionCall) expressionNode()     {}

// FunctionCallStatement wraps a FunctionCall used as a standalone statement;
// its result, if any, is discarded.
type FunctionCallStatement struct {
	Call     *FunctionCall
	Position token.Position
}

func (s *FunctionCallStatement) Pos() token.Position { return s.Position }
func (s *FunctionCallStatement) Accept(v Visitor)    { v.VisitFunctionCallStatement(s) }
func (s *FunctionCallStatement) statementNode()      {}

// Conditional is `if (cond) then [else alt]`.
type Conditional struct {
	Condition Expression
	Then      *Block
	Else      *Block // nil when no else branch
	Position  token.Position
}

func (c *Conditional) Pos() token.Position { return c.Position }
func (c *Conditional) Accept(v Visitor)    { v.VisitConditional(c) }
func (c *Conditional) statementNode()      {}

// WhileLoop is `while (cond) body`.
type WhileLoop struct {
	Condition Expression
	Body      *Block
	Position  token.Position
}

func (w *WhileLoop) Pos() token.Position { return w.Position }
func (w *WhileLoop) Accept(v Visitor)    { v.VisitWhileLoop(w) }
func (w *WhileLoop) statementNode()      {}

// Return is `return [expression];`. Expression is nil when no value is
// returned.
type Return struct {
	Expression Expression
	Position   token.Position
}

func (r *Return) Pos() token.Position { return r.Position }
func (r *Return) Accept(v Visitor)    { v.VisitReturn(r) }
func (r *Return) statementNode()      {}

// Declaration is `[mut] var identifier [= expression];`.
type Declaration struct {
	Mutable     bool
	Identifier  string
	Initializer Expression // nil when absent
	Position    token.Position
}

func (d *Declaration) Pos() token.Position { return d.Position }
func (d *Declaration) Accept(v Visitor)    { v.VisitDeclaration(d) }
func (d *Declaration) statementNode()      {}

// Assignment is `identifier = expression;`.
type Assignment struct {
	Identifier string
	Expression Expression
	Position   token.Position
}

func (a *Assignment) Pos() token.Position { return a.Position }
func (a *Assignment) Accept(v Visitor)    { v.VisitAssignment(a) }
func (a *Assignment) statementNode()      {}

// --- Expression variants ---

// RelationOp is the comparison operator carried by a Relation's tail.
type RelationOp string

const (
	RelEq RelationOp = "=="
	RelNE RelationOp = "!="
	RelLt RelationOp = "<"
	RelLE RelationOp = "<="
	RelGt RelationOp = ">"
	RelGE RelationOp = ">="
)

// StandardExpression is a non-empty sequence of Conjunctions joined by
// short-circuit OR.
type StandardExpression struct {
	Conjunctions []*Conjunction
	Position     token.Position
}

func (e *StandardExpression) Pos() token.Position { return e.Position }
func (e *StandardExpression) Accept(v Visitor)    { v.VisitStandardExpression(e) }
func (e *StandardExpression) expressionNode()     {}

// Conjunction is a non-empty sequence of Relations joined by short-circuit
// AND.
type Conjunction struct {
	Relations []*Relation
	Position  token.Position
}

func (c *Conjunction) Pos() token.Position { return c.Position }
func (c *Conjunction) Accept(v Visitor)    { v.VisitConjunction(c) }
func (c *Conjunction) expressionNode()     {}

// Relation is one Additive with an optional (operator, Additive) tail;
// SecondAdditive is non-nil iff Operator is non-empty.
type Relation struct {
	First          *Additive
	Operator       RelationOp // "" when no tail
	SecondAdditive *Additive  // nil iff Operator == ""
	Position       token.Position
}

func (r *Relation) Pos() token.Position { return r.Position }
func (r *Relation) Accept(v Visitor)    { v.VisitRelation(r) }
func (r *Relation) expressionNode()     {}

// Additive is an optional leading unary minus plus a non-empty sequence of
// Multiplicatives joined by +/-. len(Operators) == len(Multiplicatives)-1.
type Additive struct {
	Negated         bool
	Multiplicatives []*Multiplicative
	Operators       []string // "+" or "-", between consecutive multiplicatives
	Position        token.Position
}

func (a *Additive) Pos() token.Position { return a.Position }
func (a *Additive) Accept(v Visitor)    { v.VisitAdditive(a) }
func (a *Additive) expressionNode()     {}

// Multiplicative is a non-empty sequence of Factors joined by * or /.
// len(Operators) == len(Factors)-1.
type Multiplicative struct {
	Factors   []*Factor
	Operators []string // "*" or "/"
	Position  token.Position
}

func (m *Multiplicative) Pos() token.Position { return m.Position }
func (m *Multiplicative) Accept(v Visitor)    { v.VisitMultiplicative(m) }
func (m *Multiplicative) expressionNode()     {}

// Factor is an optional logical-not flag plus exactly one of: Literal,
// a parenthesised StandardExpression, a FunctionCall, or an Identifier
// reference.
type Factor struct {
	Negated bool

	Literal    *Literal            // one of bool/int/float/string
	Parens     *StandardExpression // "(" standard_expression ")"
	Call       *FunctionCall       // identifier "(" arguments ")"
	Identifier string              // bare identifier reference; "" if unused

	Position token.Position
}

func (f *Factor) Pos() token.Position { return f.Position }
func (f *Factor) Accept(v Visitor)    { v.VisitFactor(f) }
func (f *Factor) expressionNode()     {}

// LiteralKind tags which payload a Literal carries.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
)

// Literal is one of {bool, int, float, string}.
type Literal struct {
	Kind        LiteralKind
	BoolValue   bool
	IntValue    int64
	FloatValue  float64
	StringValue string
	Position    token.Position
}

func (l *Literal) Pos() token.Position { return l.Position }
func (l *Literal) Accept(v Visitor)    { v.VisitLiteral(l) }
func (l *Literal) expressionNode()     {}

// FuncExpression is a non-empty sequence of Composables joined by `>>`
// (right-shift compose). It is the expression form reached via
// `[` func_expression `]`.
type FuncExpression struct {
	Composables []*Composable
	Position    token.Position
}

func (fe *FuncExpression) Pos() token.Position { return fe.Position }
func (fe *FuncExpression) Accept(v Visitor)    { v.VisitFuncExpression(fe) }
func (fe *FuncExpression) expressionNode()     {}

// Composable is a Bindable plus an optional argument list supplied via the
// bind operator `<<`.
type Composable struct {
	Bindable  *Bindable
	Arguments []Expression // nil when no `<< (...)` suffix
	HasBind   bool
	Position  token.Position
}

func (c *Composable) Pos() token.Position { return c.Position }
func (c *Composable) Accept(v Visitor)    { v.VisitComposable(c) }

// Bindable is one of {FunctionLiteral, parenthesised FuncExpression,
// FunctionCall, Identifier}.
type Bindable struct {
	FunctionLiteral *FunctionLiteral
	FuncExpression  *FuncExpression // "(" func_expression ")"
	Call            *FunctionCall
	Identifier      string // "" if unused

	Position token.Position
}

func (b *Bindable) Pos() token.Position { return b.Position }
func (b *Bindable) Accept(v Visitor)    { v.VisitBindable(b) }

// FunctionLiteral is an anonymous function: `(params) { body }`.
type FunctionLiteral struct {
	Parameters []*Parameter
	Body       *Block
	Position   token.Position
}

func (fl *FunctionLiteral) Pos() token.Position { return fl.Position }
func (fl *FunctionLiteral) Accept(v Visitor)    { v.VisitFunctionLiteral(fl) }
