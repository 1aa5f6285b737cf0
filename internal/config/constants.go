// Package config centralizes the small set of constants shared across the
// lexer, parser and interpreter so length ceilings and reserved names live
// in one place instead of being duplicated as magic numbers.
package config

const SourceFileExt = ".amb"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".amb", ".ambit"}

// EntryFunctionName is the reserved name of the program's entry point.
const EntryFunctionName = "Main"

// Lexer length ceilings. Exceeding any of these produces a terminating
// lexical diagnostic (see internal/diagnostics).
const (
	MaxIdentifierLength = 45
	MaxCommentLength    = 500
	MaxStringLength     = 300
	MaxNumberLength     = 45
)
