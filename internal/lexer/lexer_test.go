package lexer

import (
	"testing"

	"github.com/orange-lang/orangec/internal/token"
)

func TestLexBasicProgram(t *testing.T) {
	input := `Main {
		int x = 1 + 2;
	}`

	tests := []struct {
		kind token.Kind
		text string
	}{
		{token.IDENTIFIER, "Main"},
		{token.LBRACE, "{"},
		{token.IDENTIFIER, "int"},
		{token.IDENTIFIER, "x"},
		{token.EQUALS, "="},
		{token.INTLITERAL, "1"},
		{token.PLUS, "+"},
		{token.INTLITERAL, "2"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	toks := New(input, "test.orange").Lex()
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind || toks[i].Text != tt.text {
			t.Errorf("token %d: got %s(%q), want %s(%q)", i, toks[i].Kind, toks[i].Text, tt.kind, tt.text)
		}
	}
}

func TestLexKeywords(t *testing.T) {
	input := "struct enum static const private if else while return new free cast verbatim true false null is isnt and or"

	tests := []token.Kind{
		token.STRUCT, token.ENUM, token.STATIC, token.CONST, token.PRIVATE,
		token.IF, token.ELSE, token.WHILE, token.RETURN,
		token.NEW, token.FREE, token.CAST, token.VERBATIM,
		token.TRUE, token.FALSE, token.NULL, token.IS, token.ISNT, token.AND, token.OR,
		token.EOF,
	}

	toks := New(input, "test.orange").Lex()
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(tests))
	}
	for i, want := range tests {
		if toks[i].Kind != want {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, want)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	toks := New("42 3.14 0", "t").Lex()
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.INTLITERAL, "42"},
		{token.REALLITERAL, "3.14"},
		{token.INTLITERAL, "0"},
		{token.EOF, ""},
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d: got %s(%q), want %s(%q)", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestLexStringAndCharEscapes(t *testing.T) {
	toks := New(`"a\nb" '\t'`, "t").Lex()
	if toks[0].Kind != token.STRINGLITERAL || toks[0].Text != "a\nb" {
		t.Errorf("string literal: got %q", toks[0].Text)
	}
	if toks[1].Kind != token.CHARLITERAL || toks[1].Text != "\t" {
		t.Errorf("char literal: got %q", toks[1].Text)
	}
}

func TestLexOperators(t *testing.T) {
	toks := New("< <= > >= == && || / * // /*", "t").Lex()
	want := []token.Kind{
		token.LESSER, token.LESSEREQUAL, token.GREATER, token.GREATEREQUAL,
		token.IS, token.AND, token.OR, token.SLASH, token.STAR, token.DSLASH, token.LBLOCK,
		token.EOF,
	}
	for i, w := range want {
		if toks[i].Kind != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, w)
		}
	}
}

func TestLexArraySuffixIsNotCoalescedByLexerAlone(t *testing.T) {
	// The lexer itself keeps "[" "]" separate; coalescing into "<name> array"
	// is internal/preprocess's job, not the lexer's.
	toks := New("int[]", "t").Lex()
	want := []token.Kind{token.IDENTIFIER, token.LSQUARE, token.RSQUARE, token.EOF}
	for i, w := range want {
		if toks[i].Kind != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, w)
		}
	}
}

func TestLexLineCounting(t *testing.T) {
	toks := New("a\nb\nc", "t").Lex()
	lines := []int{0, 1, 2}
	for i, l := range lines {
		if toks[i].Pos.Line != l {
			t.Errorf("token %d: got line %d, want %d", i, toks[i].Pos.Line, l)
		}
	}
}

func TestLexCaretIsReservedButScanned(t *testing.T) {
	toks := New("^", "t").Lex()
	if toks[0].Kind != token.CARET {
		t.Errorf("got %s, want CARET", toks[0].Kind)
	}
}
