package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambitlang/ambit/internal/lexer"
	"github.com/ambitlang/ambit/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, []string) {
	t.Helper()
	l := lexer.New(src)
	toks, diags := l.Tokens()
	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = string(d.Code)
	}
	return toks, codes
}

func TestLexerBasicOperatorsAndKeywords(t *testing.T) {
	toks, diags := lexAll(t, `mut var while if else return func true false`)
	require.Empty(t, diags)
	want := []token.Type{token.Mut, token.Var, token.While, token.If, token.Else, token.Return, token.Func, token.Boolean, token.Boolean, token.EndOfFile}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
	assert.True(t, toks[7].BoolValue)
	assert.False(t, toks[8].BoolValue)
}

func TestLexerTwoCharOperatorsPreferredOverOneChar(t *testing.T) {
	toks, diags := lexAll(t, `&& || == != <= >= += -= *= /= &= |= << >>`)
	require.Empty(t, diags)
	want := []token.Type{
		token.LogicalAnd, token.LogicalOr, token.Equal, token.NotEqual,
		token.LessEqual, token.GreaterEqual, token.PlusAssign, token.MinusAssign,
		token.AsteriskAssign, token.SlashAssign, token.AndAssign, token.OrAssign,
		token.FunctionBind, token.FunctionCompose, token.EndOfFile,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestLexerPositionTracking(t *testing.T) {
	toks, diags := lexAll(t, "a\nbb  ccc")
	require.Empty(t, diags)
	require.Len(t, toks, 4) // a, bb, ccc, EOF
	assert.Equal(t, token.Position{Line: 1, Column: 1}, toks[0].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 1}, toks[1].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 5}, toks[2].Position)
}

func TestLexerPositionsMonotonicallyNonDecreasing(t *testing.T) {
	toks, _ := lexAll(t, `func Main() {
		mut var a = 1 + 2 * 3;
		while (a < 10) { a = a + 1; }
	}`)
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Position, toks[i].Position
		assert.True(t, cur.Line > prev.Line || (cur.Line == prev.Line && cur.Column >= prev.Column),
			"token %d position %v regressed from %v", i, cur, prev)
	}
}

func TestLexerIntegerAndFloatLiterals(t *testing.T) {
	toks, diags := lexAll(t, `0 42 0.5 3.14159`)
	require.Empty(t, diags)
	require.Len(t, toks, 5)
	assert.Equal(t, token.Integer, toks[0].Type)
	assert.EqualValues(t, 0, toks[0].IntValue)
	assert.Equal(t, token.Integer, toks[1].Type)
	assert.EqualValues(t, 42, toks[1].IntValue)
	assert.Equal(t, token.Float, toks[2].Type)
	assert.InDelta(t, 0.5, toks[2].FloatValue, 1e-9)
	assert.Equal(t, token.Float, toks[3].Type)
}

func TestLexerLeadingZeroIsInvalidNumber(t *testing.T) {
	toks, diags := lexAll(t, `042`)
	assert.Equal(t, token.Unrecognized, toks[0].Type)
	assert.Equal(t, "042", toks[0].Text)
	require.Len(t, diags, 1)
	assert.Equal(t, "InvalidNumber", diags[0])

	// A leading zero poisons a float literal too unless the zero is
	// directly followed by the decimal point.
	_, diags2 := lexAll(t, `042.5`)
	require.Len(t, diags2, 1)
	assert.Equal(t, "InvalidNumber", diags2[0])
}

func TestLexerIntegerOverflow(t *testing.T) {
	toks, diags := lexAll(t, `99999999999999999999`)
	assert.Equal(t, token.Unrecognized, toks[0].Type)
	require.Len(t, diags, 1)
	assert.Equal(t, "IntegerOverflow", diags[0])
}

func TestLexerIdentifierLengthBoundary(t *testing.T) {
	ok := strings.Repeat("a", 45)
	toks, diags := lexAll(t, ok)
	require.Empty(t, diags)
	assert.Equal(t, token.Identifier, toks[0].Type)
	assert.Equal(t, ok, toks[0].Text)

	tooLong := strings.Repeat("a", 46)
	_, diags2 := lexAll(t, tooLong)
	require.Len(t, diags2, 1)
	assert.Equal(t, "IdentifierTooLong", diags2[0])
}

func TestLexerCommentLengthBoundary(t *testing.T) {
	ok := "#" + strings.Repeat("x", 500)
	_, diags := lexAll(t, ok+"\nvar")
	require.Empty(t, diags)

	tooLong := "#" + strings.Repeat("x", 501)
	_, diags2 := lexAll(t, tooLong)
	require.Len(t, diags2, 1)
	assert.Equal(t, "CommentTooLong", diags2[0])
}

func TestLexerStringLengthBoundary(t *testing.T) {
	ok := `"` + strings.Repeat("x", 299) + `"` // opening quote counts, total 300
	_, diags := lexAll(t, ok)
	require.Empty(t, diags)

	tooLong := `"` + strings.Repeat("x", 300) + `"`
	_, diags2 := lexAll(t, tooLong)
	require.Len(t, diags2, 1)
	assert.Equal(t, "StringLiteralTooLong", diags2[0])
}

func TestLexerStringEscapes(t *testing.T) {
	toks, diags := lexAll(t, `"a\nb\tc\"d\\e"`)
	require.Empty(t, diags)
	assert.Equal(t, "a\nb\tc\"d\\e", toks[0].Text)
}

func TestLexerInvalidEscapeSequenceIsNonTerminating(t *testing.T) {
	toks, diags := lexAll(t, `"a\qb" 1`)
	require.Len(t, diags, 1)
	assert.Equal(t, "InvalidEscapeSequence", diags[0])
	// the bad escape is kept verbatim in the token text and lexing
	// continues past it to the trailing integer
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, `a\qb`, toks[0].Text)
	assert.Equal(t, token.Integer, toks[1].Type)
}

func TestLexerIncompleteStringLiteral(t *testing.T) {
	toks, diags := lexAll(t, `"unterminated`)
	require.Len(t, diags, 1)
	assert.Equal(t, "IncompleteStringLiteral", diags[0])
	assert.Equal(t, token.Unrecognized, toks[0].Type)
}

func TestLexerUnrecognizedSymbol(t *testing.T) {
	toks, diags := lexAll(t, `@`)
	require.Len(t, diags, 1)
	assert.Equal(t, "UnrecognizedSymbol", diags[0])
	assert.Equal(t, token.Unrecognized, toks[0].Type)
	assert.Equal(t, "@", toks[0].Text)
}

func TestLexerSkipsCommentsEntirely(t *testing.T) {
	toks, diags := lexAll(t, "# a whole comment\nvar")
	require.Empty(t, diags)
	require.Len(t, toks, 2) // var, EOF
	assert.Equal(t, token.Var, toks[0].Type)
}
