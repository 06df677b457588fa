package preprocess

import (
	"testing"

	"github.com/orange-lang/orangec/internal/lexer"
	"github.com/orange-lang/orangec/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestStripBlockComment(t *testing.T) {
	toks := lexer.New("a /* b c */ d", "t").Lex()
	got := StripComments(toks)
	want := []token.Kind{token.IDENTIFIER, token.IDENTIFIER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, got[i].Kind, k)
		}
	}
	if got[0].Text != "a" || got[1].Text != "d" {
		t.Errorf("unexpected surviving text: %q %q", got[0].Text, got[1].Text)
	}
}

func TestStripLineComment(t *testing.T) {
	toks := lexer.New("a // comment\nb", "t").Lex()
	got := StripComments(toks)
	if len(got) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(got), got)
	}
	if got[0].Text != "a" || got[1].Text != "b" {
		t.Errorf("unexpected surviving text: %q %q", got[0].Text, got[1].Text)
	}
}

func TestCoalesceArrays(t *testing.T) {
	toks := lexer.New("int[] x", "t").Lex()
	got := CoalesceArrays(toks)
	if got[0].Kind != token.IDENTIFIER || got[0].Text != "int array" {
		t.Fatalf("got %s(%q), want IDENTIFIER(%q)", got[0].Kind, got[0].Text, "int array")
	}
	if got[1].Kind != token.IDENTIFIER || got[1].Text != "x" {
		t.Errorf("got %s(%q) for second token", got[1].Kind, got[1].Text)
	}
}

func TestCoalesceStackedArrays(t *testing.T) {
	toks := lexer.New("int[][] x", "t").Lex()
	got := CoalesceArrays(toks)
	if got[0].Kind != token.IDENTIFIER || got[0].Text != "int array array" {
		t.Fatalf("got %s(%q), want IDENTIFIER(%q)", got[0].Kind, got[0].Text, "int array array")
	}
	if got[1].Kind != token.IDENTIFIER || got[1].Text != "x" {
		t.Errorf("got %s(%q) for second token", got[1].Kind, got[1].Text)
	}
}

func TestProcessOrdersCommentsBeforeArrays(t *testing.T) {
	toks := lexer.New("int/**/[] x", "t").Lex()
	got := Process(toks)
	if got[0].Text != "int array" {
		t.Fatalf("got %q, want \"int array\"", got[0].Text)
	}
}
