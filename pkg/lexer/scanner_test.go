package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/pkg/lexer"
)

func tokenKinds(t *testing.T, src string) []lexer.Kind {
	t.Helper()
	toks, err := lexer.NewScanner(src).Tokens()
	require.NoError(t, err)
	kinds := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanner_Keywords(t *testing.T) {
	kinds := tokenKinds(t, "state transition when let fn if else true false null return print")
	require.Equal(t, []lexer.Kind{
		lexer.STATE, lexer.TRANSITION, lexer.WHEN, lexer.LET, lexer.FN,
		lexer.IF, lexer.ELSE, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.RETURN, lexer.PRINT, lexer.EOF,
	}, kinds)
}

func TestScanner_HTTPMethodsAreKeywordsNotIdentifiers(t *testing.T) {
	kinds := tokenKinds(t, "GET POST PUT DELETE PATCH")
	require.Equal(t, []lexer.Kind{
		lexer.GET, lexer.POST, lexer.PUT, lexer.DELETE, lexer.PATCH, lexer.EOF,
	}, kinds)
}

func TestScanner_IdentifierNotKeyword(t *testing.T) {
	kinds := tokenKinds(t, "stateful")
	require.Equal(t, []lexer.Kind{lexer.IDENTIFIER, lexer.EOF}, kinds)
}

func TestScanner_LineCommentSuppressedUntilNewline(t *testing.T) {
	toks, err := lexer.NewScanner("let x = 1 // this is a comment\nlet y = 2").Tokens()
	require.NoError(t, err)

	var kinds []lexer.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []lexer.Kind{
		lexer.LET, lexer.IDENTIFIER, lexer.ASSIGN, lexer.NUMBER,
		lexer.LET, lexer.IDENTIFIER, lexer.ASSIGN, lexer.NUMBER,
		lexer.EOF,
	}, kinds)

	require.Equal(t, 2, toks[4].Line, "second let should be on line 2 after the comment")
}

func TestScanner_StringEscapes(t *testing.T) {
	toks, err := lexer.NewScanner(`"a\nb"`).Tokens()
	require.NoError(t, err)
	require.Equal(t, lexer.STRING, toks[0].Kind)
	require.Equal(t, "a\nb", toks[0].Lexeme)
	require.Len(t, toks[0].Lexeme, 3)
}

func TestScanner_UnterminatedStringAtEOFIsTolerated(t *testing.T) {
	toks, err := lexer.NewScanner(`"unterminated`).Tokens()
	require.NoError(t, err)
	require.Equal(t, lexer.STRING, toks[0].Kind)
	require.Equal(t, "unterminated", toks[0].Lexeme)
	require.Equal(t, lexer.EOF, toks[1].Kind)
}

func TestScanner_SingleQuotedStrings(t *testing.T) {
	toks, err := lexer.NewScanner(`'hello'`).Tokens()
	require.NoError(t, err)
	require.Equal(t, lexer.STRING, toks[0].Kind)
	require.Equal(t, "hello", toks[0].Lexeme)
}

func TestScanner_ArrowVsMinusThenGreaterThan(t *testing.T) {
	kinds := tokenKinds(t, "a -> b")
	require.Equal(t, []lexer.Kind{lexer.IDENTIFIER, lexer.ARROW, lexer.IDENTIFIER, lexer.EOF}, kinds)

	kinds = tokenKinds(t, "a - > b")
	require.Equal(t, []lexer.Kind{
		lexer.IDENTIFIER, lexer.MINUS, lexer.GT, lexer.IDENTIFIER, lexer.EOF,
	}, kinds)
}

func TestScanner_TwoCharacterOperators(t *testing.T) {
	kinds := tokenKinds(t, "== != <= >= = < >")
	require.Equal(t, []lexer.Kind{
		lexer.EQ, lexer.NOT_EQ, lexer.LT_EQ, lexer.GT_EQ, lexer.ASSIGN, lexer.LT, lexer.GT, lexer.EOF,
	}, kinds)
}

func TestScanner_NumberWithDecimalPoint(t *testing.T) {
	toks, err := lexer.NewScanner("3.14 42").Tokens()
	require.NoError(t, err)
	require.Equal(t, "3.14", toks[0].Lexeme)
	require.Equal(t, "42", toks[1].Lexeme)
}

func TestScanner_IllegalCharacterProducesLexError(t *testing.T) {
	_, err := lexer.NewScanner("let x = @").Tokens()
	require.Error(t, err)
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestScanner_LineAndColumnTracking(t *testing.T) {
	toks, err := lexer.NewScanner("let x\nlet y").Tokens()
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[2].Line)
}
