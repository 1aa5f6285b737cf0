// Package lexer turns source text into a stream of positioned tokens.
//
// The lexer is single-threaded and stream-oriented: it reads one character
// at a time from an in-memory buffer and never looks further ahead than the
// one character peekChar exposes.
package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/ambitlang/ambit/internal/config"
	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/token"
)

// Lexer converts a character stream into tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int

	terminated bool
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// NextToken consumes one whitespace-skipped, non-comment token and returns
// it together with any diagnostics raised while producing it. Once a
// terminating diagnostic has fired, every subsequent call returns EndOfFile
// with no further diagnostics.
func (l *Lexer) NextToken() (token.Token, []*diagnostics.Diagnostic) {
	if l.terminated {
		return token.New(token.EndOfFile, l.pos()), nil
	}

	var diags []*diagnostics.Diagnostic
	l.skipWhitespaceAndComments(&diags)
	if l.terminated {
		return token.New(token.EndOfFile, l.pos()), diags
	}

	start := l.pos()

	switch {
	case l.ch == 0:
		return token.New(token.EndOfFile, start), diags
	case isDigit(l.ch):
		tok, d := l.readNumber(start)
		diags = append(diags, d...)
		return tok, diags
	case isLetterStart(l.ch):
		tok, d := l.readWord(start)
		diags = append(diags, d...)
		return tok, diags
	case l.ch == '"':
		tok, d := l.readString(start)
		diags = append(diags, d...)
		return tok, diags
	}

	if tok, ok := l.readTwoCharOperator(start); ok {
		return tok, diags
	}
	if tok, ok := l.readSingleCharOperator(start); ok {
		return tok, diags
	}

	ch := l.ch
	l.readChar()
	diags = append(diags, diagnostics.Lexical(diagnostics.UnrecognizedSymbol, start, "unrecognized character '"+string(ch)+"'"))
	return token.NewText(token.Unrecognized, start, string(ch)), diags
}

func (l *Lexer) skipWhitespaceAndComments(diags *[]*diagnostics.Diagnostic) {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch != '#' {
			return
		}
		start := l.pos()
		d := l.skipComment(start)
		*diags = append(*diags, d...)
		if l.terminated {
			return
		}
	}
}

// skipComment consumes a '#'-delimited comment; comments never become
// tokens of their own, they are pure whitespace with a length ceiling.
func (l *Lexer) skipComment(start token.Position) []*diagnostics.Diagnostic {
	l.readChar() // consume '#'
	length := 0
	for l.ch != '\n' && l.ch != 0 {
		length++
		if length > config.MaxCommentLength {
			l.terminated = true
			return []*diagnostics.Diagnostic{diagnostics.LexicalTerminating(diagnostics.CommentTooLong, start, "comment exceeds maximum length")}
		}
		l.readChar()
	}
	return nil
}

func (l *Lexer) readNumber(start token.Position) (token.Token, []*diagnostics.Diagnostic) {
	var sb strings.Builder
	isFloat := false
	leadingZero := l.ch == '0'

	for isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
		if sb.Len() > config.MaxNumberLength {
			l.terminated = true
			return token.NewText(token.Unrecognized, start, sb.String()),
				[]*diagnostics.Diagnostic{diagnostics.LexicalTerminating(diagnostics.NumberTooLong, start, "number exceeds maximum length")}
		}
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		sb.WriteByte(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteByte(l.ch)
			l.readChar()
			if sb.Len() > config.MaxNumberLength {
				l.terminated = true
				return token.NewText(token.Unrecognized, start, sb.String()),
					[]*diagnostics.Diagnostic{diagnostics.LexicalTerminating(diagnostics.NumberTooLong, start, "number exceeds maximum length")}
			}
		}
	}

	text := sb.String()

	// A leading zero is only legal when the literal is "0" or the zero is
	// immediately followed by the decimal point ("0.5" yes, "042.5" no).
	if leadingZero && len(text) > 1 && text[1] != '.' {
		return token.NewText(token.Unrecognized, start, text),
			[]*diagnostics.Diagnostic{diagnostics.Lexical(diagnostics.InvalidNumber, start, "numeric literal '"+text+"' has a leading zero")}
	}

	if isFloat {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(val, 0) {
			return token.NewText(token.Unrecognized, start, text),
				[]*diagnostics.Diagnostic{diagnostics.Lexical(diagnostics.FloatOverflow, start, "float literal '"+text+"' overflows")}
		}
		return token.NewFloat(start, val), nil
	}

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.NewText(token.Unrecognized, start, text),
			[]*diagnostics.Diagnostic{diagnostics.Lexical(diagnostics.IntegerOverflow, start, "integer literal '"+text+"' overflows")}
	}
	return token.NewInteger(start, val), nil
}

func (l *Lexer) readWord(start token.Position) (token.Token, []*diagnostics.Diagnostic) {
	var sb strings.Builder
	for isLetter(l.ch) || isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
		if sb.Len() > config.MaxIdentifierLength {
			l.terminated = true
			return token.NewText(token.Unrecognized, start, sb.String()),
				[]*diagnostics.Diagnostic{diagnostics.LexicalTerminating(diagnostics.IdentifierTooLong, start, "identifier exceeds maximum length")}
		}
	}
	text := sb.String()

	switch text {
	case "true":
		return token.NewBoolean(start, true), nil
	case "false":
		return token.NewBoolean(start, false), nil
	}
	if kind, ok := token.LookupKeyword(text); ok {
		return token.New(kind, start), nil
	}
	return token.NewText(token.Identifier, start, text), nil
}

func (l *Lexer) readString(start token.Position) (token.Token, []*diagnostics.Diagnostic) {
	var sb strings.Builder
	var diags []*diagnostics.Diagnostic
	totalLen := 1 // the opening quote counts toward the length ceiling
	l.readChar()  // consume opening '"'

	for {
		if totalLen > config.MaxStringLength {
			l.terminated = true
			return token.NewText(token.Unrecognized, start, sb.String()),
				append(diags, diagnostics.LexicalTerminating(diagnostics.StringLiteralTooLong, start, "string literal exceeds maximum length"))
		}
		switch l.ch {
		case '"':
			l.readChar()
			return token.NewText(token.String, start, sb.String()), diags
		case 0:
			return token.NewText(token.Unrecognized, start, sb.String()),
				append(diags, diagnostics.Lexical(diagnostics.IncompleteStringLiteral, start, "string literal is missing its closing quote"))
		case '\\':
			totalLen++
			l.readChar()
			switch l.ch {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 0:
				return token.NewText(token.Unrecognized, start, sb.String()),
					append(diags, diagnostics.Lexical(diagnostics.IncompleteStringLiteral, start, "string literal is missing its closing quote"))
			default:
				// An invalid escape is reported but not fatal: the
				// characters are kept verbatim and the literal keeps
				// lexing.
				diags = append(diags, diagnostics.Lexical(diagnostics.InvalidEscapeSequence, l.pos(), "unrecognized escape sequence '\\"+string(l.ch)+"'"))
				sb.WriteByte('\\')
				sb.WriteByte(l.ch)
			}
			totalLen++
			l.readChar()
		default:
			sb.WriteByte(l.ch)
			totalLen++
			l.readChar()
		}
	}
}

func (l *Lexer) readTwoCharOperator(start token.Position) (token.Token, bool) {
	two := func(kind token.Type) (token.Token, bool) {
		l.readChar()
		l.readChar()
		return token.New(kind, start), true
	}
	switch l.ch {
	case '&':
		if l.peekChar() == '&' {
			return two(token.LogicalAnd)
		}
		if l.peekChar() == '=' {
			return two(token.AndAssign)
		}
	case '|':
		if l.peekChar() == '|' {
			return two(token.LogicalOr)
		}
		if l.peekChar() == '=' {
			return two(token.OrAssign)
		}
	case '=':
		if l.peekChar() == '=' {
			return two(token.Equal)
		}
	case '!':
		if l.peekChar() == '=' {
			return two(token.NotEqual)
		}
	case '+':
		if l.peekChar() == '=' {
			return two(token.PlusAssign)
		}
	case '-':
		if l.peekChar() == '=' {
			return two(token.MinusAssign)
		}
	case '*':
		if l.peekChar() == '=' {
			return two(token.AsteriskAssign)
		}
	case '/':
		if l.peekChar() == '=' {
			return two(token.SlashAssign)
		}
	case '<':
		if l.peekChar() == '=' {
			return two(token.LessEqual)
		}
		if l.peekChar() == '<' {
			return two(token.FunctionBind)
		}
	case '>':
		if l.peekChar() == '=' {
			return two(token.GreaterEqual)
		}
		if l.peekChar() == '>' {
			return two(token.FunctionCompose)
		}
	}
	return token.Token{}, false
}

var singleCharTokens = map[byte]token.Type{
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LSquare,
	']': token.RSquare,
	',': token.Comma,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Asterisk,
	'/': token.Slash,
	'!': token.LogicalNot,
	'<': token.Less,
	'>': token.Greater,
}

func (l *Lexer) readSingleCharOperator(start token.Position) (token.Token, bool) {
	kind, ok := singleCharTokens[l.ch]
	if !ok {
		return token.Token{}, false
	}
	l.readChar()
	return token.New(kind, start), true
}

// Tokens drains the stream, returning the full token list (terminated by an
// EndOfFile token) and every diagnostic encountered along the way.
func (l *Lexer) Tokens() ([]token.Token, []*diagnostics.Diagnostic) {
	var toks []token.Token
	var diags []*diagnostics.Diagnostic
	for {
		tok, d := l.NextToken()
		diags = append(diags, d...)
		toks = append(toks, tok)
		if tok.Type == token.EndOfFile {
			return toks, diags
		}
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetterStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isLetter(ch byte) bool { return isLetterStart(ch) }
