package ast

// Visitor lets a secondary consumer (prettyprinter.TreePrinter) walk the
// tree without the interpreter's evaluation dispatch needing to know about
// it. The interpreter itself never uses Visitor: it type-switches on node
// shape directly, the way a tree-walking evaluator normally does.
type Visitor interface {
	VisitProgram(*Program)
	VisitFunctionDefinition(*FunctionDefinition)
	VisitBlock(*Block)
	VisitFunctionCall(*FunctionCall)
	VisitFunctionCallStatement(*FunctionCallStatement)
	VisitConditional(*Conditional)
	VisitWhileLoop(*WhileLoop)
	VisitReturn(*Return)
	VisitDeclaration(*Declaration)
	VisitAssignment(*Assignment)
	VisitStandardExpression(*StandardExpression)
	VisitConjunction(*Conjunction)
	VisitRelation(*Relation)
	VisitAdditive(*Additive)
	VisitMultiplicative(*Multiplicative)
	VisitFactor(*Factor)
	VisitLiteral(*Literal)
	VisitFuncExpression(*FuncExpression)
	VisitComposable(*Composable)
	VisitBindable(*Bindable)
	VisitFunctionLiteral(*FunctionLiteral)
}
