// Package diagnostics implements the error taxonomy shared by the lexer,
// parser and interpreter: a phase-tagged, positioned diagnostic that
// renders as "<Kind> Error [line: L, column: C] <message>".
package diagnostics

import (
	"fmt"

	"github.com/ambitlang/ambit/internal/token"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseLexer       Phase = "Lexical"
	PhaseParser      Phase = "Syntax"
	PhaseInterpreter Phase = "Semantic"
)

// Code enumerates every diagnostic kind across the three phases.
type Code string

const (
	// Lexical
	IntegerOverflow         Code = "IntegerOverflow"
	FloatOverflow           Code = "FloatOverflow"
	NumberTooLong           Code = "NumberTooLong"
	IdentifierTooLong       Code = "IdentifierTooLong"
	CommentTooLong          Code = "CommentTooLong"
	StringLiteralTooLong    Code = "StringLiteralTooLong"
	InvalidNumber           Code = "InvalidNumber"
	InvalidEscapeSequence   Code = "InvalidEscapeSequence"
	IncompleteStringLiteral Code = "IncompleteStringLiteral"
	UnrecognizedSymbol      Code = "UnrecognizedSymbol"

	// Syntactic -- message text is built by the caller, this code is
	// generic since the grammar's "expected X" productions are too varied
	// for a fixed template table.
	SyntaxError Code = "SyntaxError"

	// Semantic
	MainNotFound                 Code = "MainNotFound"
	ArityMismatch                Code = "ArityMismatch"
	UnknownIdentifier            Code = "UnknownIdentifier"
	UninitializedVariable        Code = "UninitializedVariable"
	RedeclaredVariable           Code = "RedeclaredVariable"
	NameClashWithFunction        Code = "NameClashWithFunction"
	AssignmentToImmutable        Code = "AssignmentToImmutable"
	TypeNotCoercible             Code = "TypeNotCoercible"
	DivisionByZero               Code = "DivisionByZero"
	FunctionComposeArity         Code = "FunctionComposeArity"
	FunctionBindOnNonFunction    Code = "FunctionBindOnNonFunction"
	ReturnValueRequired          Code = "ReturnValueRequired"
	ReturnedNoValueWhereExpected Code = "ReturnedNoValueWhereExpected"
	UnknownOperator              Code = "UnknownOperator"
)

// Diagnostic is a single positioned error from any pipeline phase.
// A terminating lexical diagnostic stops further tokenization (and,
// transitively, parsing). Syntax and semantic diagnostics are always
// terminating, and any terminating diagnostic keeps the interpreter stage
// from running.
type Diagnostic struct {
	Code        Code
	Phase       Phase
	Position    token.Position
	Message     string
	Terminating bool
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s Error [line: %d, column: %d] %s", d.Phase, d.Position.Line, d.Position.Column, d.Message)
}

// New builds a non-terminating diagnostic.
func New(phase Phase, code Code, pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Code: code, Phase: phase, Position: pos, Message: message}
}

// NewTerminating builds a terminating diagnostic.
func NewTerminating(phase Phase, code Code, pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Code: code, Phase: phase, Position: pos, Message: message, Terminating: true}
}

func Lexical(code Code, pos token.Position, message string) *Diagnostic {
	return New(PhaseLexer, code, pos, message)
}

func LexicalTerminating(code Code, pos token.Position, message string) *Diagnostic {
	return NewTerminating(PhaseLexer, code, pos, message)
}

func Syntax(pos token.Position, format string, args ...interface{}) *Diagnostic {
	return NewTerminating(PhaseParser, SyntaxError, pos, fmt.Sprintf(format, args...))
}

func Semantic(code Code, pos token.Position, format string, args ...interface{}) *Diagnostic {
	return NewTerminating(PhaseInterpreter, code, pos, fmt.Sprintf(format, args...))
}
