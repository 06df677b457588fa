// Package parser implements the Orange recursive-descent parser:
// it consumes a pre-processed token stream and simultaneously builds the
// symbol tree and, for every variable/function, the AST representing its
// initializer or body.
//
// Any unexpected token or token sequence terminates compilation immediately.
// Internally this is implemented with a recover-based bailout, the same
// pattern the Go standard library's own go/parser uses for its fatal-error
// fast path, rather than threading an error return through every one of the
// many small recursive-descent helpers below.
package parser

import (
	"github.com/orange-lang/orangec/internal/errors"
	"github.com/orange-lang/orangec/internal/lexer"
	"github.com/orange-lang/orangec/internal/preprocess"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

// Parser holds the state for one file's worth of parsing against a shared
// Table — the Table, not the Parser, is what is process-wide.
type Parser struct {
	table  *symbols.Table
	source string
	file   string
	toks   []token.Token
	pos    int
}

// bailout unwinds the recursive-descent call stack on the first fatal
// parse error; see the package doc comment.
type bailout struct {
	err *errors.CompilerError
}

// Parse lexes and pre-processes src, then parses its module declarations
// into table. Multiple files share one Table (and therefore one id counter
// and type map), so a multi-file build sees one combined program.
func Parse(table *symbols.Table, src, file string) (err *errors.CompilerError) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				err = b.err
				return
			}
			panic(r)
		}
	}()

	toks := preprocess.Process(lexer.New(src, file).Lex())
	p := &Parser{table: table, source: src, file: file, toks: toks}
	for !p.atEOF() {
		p.parseModule()
	}
	return nil
}

func (p *Parser) fail(pos token.Position, format string, args ...any) {
	panic(bailout{errors.New(pos, p.source, format, args...)})
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx < len(p.toks) {
		return p.toks[idx]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) expect(k token.Kind) token.Token {
	t := p.cur()
	if t.Kind != k {
		p.fail(t.Pos, "expected %s, got %s %q", k, t.Kind, t.Text)
	}
	return p.advance()
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// parseTypeName parses a type position: either a plain identifier (already
// possibly "<name> array" from preprocessing) or an external-qualified
// "Mod:Type" form, recorded as the parser-level "Mod$Type" unresolved
// marker for the validator's pass 1 to rewrite.
func (p *Parser) parseTypeName() string {
	first := p.expect(token.IDENTIFIER)
	if p.cur().Kind == token.COLON && p.peek(1).Kind == token.IDENTIFIER {
		p.advance() // ':'
		member := p.advance()
		return first.Text + "$" + member.Text
	}
	return first.Text
}

// declSignatureLen reports whether the tokens starting at the current
// position match a local variable declaration's look-ahead signature
//, returning how many tokens the type occupies (1, or 3 for the
// qualified "IDENT : IDENT" prefix), or 0 if this is not a declaration.
func (p *Parser) declSignatureLen() int {
	if p.cur().Kind != token.IDENTIFIER {
		return 0
	}
	if p.peek(1).Kind == token.COLON && p.peek(2).Kind == token.IDENTIFIER {
		if p.peek(3).Kind == token.IDENTIFIER &&
			(p.peek(4).Kind == token.SEMICOLON || p.peek(4).Kind == token.EQUALS) {
			return 3
		}
		return 0
	}
	if p.peek(1).Kind == token.IDENTIFIER &&
		(p.peek(2).Kind == token.SEMICOLON || p.peek(2).Kind == token.EQUALS) {
		return 1
	}
	return 0
}
