package parser

import (
	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

// parseModule parses one top-level "IDENT '{' members '}'" declaration
// and registers it as a child of the shared Table's Program root.
func (p *Parser) parseModule() {
	nameTok := p.expect(token.IDENTIFIER)
	p.expect(token.LBRACE)

	mod, existed := p.table.NewChild(p.table.Root, symbols.Module, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate module %q", nameTok.Text)
	}

	for p.cur().Kind != token.RBRACE {
		if p.atEOF() {
			p.fail(p.cur().Pos, "unterminated module %q", nameTok.Text)
		}
		p.parseMember(mod)
	}
	p.expect(token.RBRACE)
}

// parseMember dispatches one module member using the look-ahead shapes of
// struct, enum, or a type-led declaration (variable, var-with-init, or
// function), each optionally preceded by private/static/const modifiers.
func (p *Parser) parseMember(mod *symbols.Symbol) {
	var isPrivate, isStatic, isConst bool
modifiers:
	for {
		switch p.cur().Kind {
		case token.PRIVATE:
			isPrivate = true
			p.advance()
		case token.STATIC:
			isStatic = true
			p.advance()
		case token.CONST:
			isConst = true
			p.advance()
		default:
			break modifiers
		}
	}

	switch p.cur().Kind {
	case token.STRUCT:
		p.parseStruct(mod, isPrivate)
		return
	case token.ENUM:
		p.parseEnum(mod, isPrivate)
		return
	}

	typ := p.parseTypeName()
	nameTok := p.expect(token.IDENTIFIER)

	switch p.cur().Kind {
	case token.SEMICOLON:
		p.advance()
		p.declareVariable(mod, typ, nameTok, isPrivate, isStatic, isConst, nil)
	case token.EQUALS:
		p.advance()
		expr := p.parseExpression(mod)
		p.expect(token.SEMICOLON)
		p.declareVariable(mod, typ, nameTok, isPrivate, isStatic, isConst, expr)
	case token.LPAREN:
		p.parseFunction(mod, typ, nameTok, isPrivate, isStatic)
	default:
		p.fail(p.cur().Pos, "unexpected token %s after %s %s", p.cur().Kind, typ, nameTok.Text)
	}
}

func (p *Parser) declareVariable(
	mod *symbols.Symbol, typ string, nameTok token.Token,
	isPrivate, isStatic, isConst bool, init *ast.Node,
) {
	sym, existed := p.table.NewChild(mod, symbols.Variable, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate symbol %q", nameTok.Text)
	}
	sym.Type = typ
	sym.IsPrivate = isPrivate
	sym.IsStatic = isStatic
	sym.IsConstant = isConst
	sym.Code = init
}

// parseStruct parses "struct IDENT paren-params ;", adding one Variable
// child per field.
func (p *Parser) parseStruct(mod *symbols.Symbol, isPrivate bool) {
	p.advance() // 'struct'
	nameTok := p.expect(token.IDENTIFIER)
	st, existed := p.table.NewChild(mod, symbols.StructKind, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate symbol %q", nameTok.Text)
	}
	st.IsPrivate = isPrivate
	st.Type = st.CanonicalType()

	p.expect(token.LPAREN)
	for p.cur().Kind != token.RPAREN {
		typ := p.parseTypeName()
		fieldTok := p.expect(token.IDENTIFIER)
		field, existed := p.table.NewChild(st, symbols.Variable, fieldTok.Text, fieldTok.Pos)
		if existed {
			p.fail(fieldTok.Pos, "duplicate field %q", fieldTok.Text)
		}
		field.Type = typ
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
}

// parseEnum parses "enum IDENT paren-names ;", adding one constant Variable
// child per variant, with an IntLiteral ordinal as its Code.
func (p *Parser) parseEnum(mod *symbols.Symbol, isPrivate bool) {
	p.advance() // 'enum'
	nameTok := p.expect(token.IDENTIFIER)
	en, existed := p.table.NewChild(mod, symbols.EnumKind, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate symbol %q", nameTok.Text)
	}
	en.IsPrivate = isPrivate
	en.Type = en.CanonicalType()

	p.expect(token.LPAREN)
	for p.cur().Kind != token.RPAREN {
		variantTok := p.expect(token.IDENTIFIER)
		variant, existed := p.table.NewChild(en, symbols.Variable, variantTok.Text, variantTok.Pos)
		if existed {
			p.fail(variantTok.Pos, "duplicate enum variant %q", variantTok.Text)
		}
		variant.Type = en.Type
		variant.IsConstant = true
		ordinal := en.Children.Size() - 1
		variant.Code = ast.NewLeaf(ast.IntLiteral, ordinal, variantTok.Pos)
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
}

// parseFunction parses the parameter list and body of a module member whose
// look-ahead already consumed its return type and name. A '{' body makes it
// a Function; a bare ';' makes it a FunctionPointer with an empty anonymous
// block used only for arity comparisons; an '= expr ;' body is sugar
// for a single-statement Function body.
func (p *Parser) parseFunction(
	mod *symbols.Symbol, retType string, nameTok token.Token, isPrivate, isStatic bool,
) {
	fn, existed := p.table.NewChild(mod, symbols.Function, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate symbol %q", nameTok.Text)
	}
	fn.Type = retType
	fn.IsPrivate = isPrivate
	fn.IsStatic = isStatic

	p.expect(token.LPAREN)
	seen := map[string]bool{}
	for p.cur().Kind != token.RPAREN {
		ptyp := p.parseTypeName()
		ptok := p.expect(token.IDENTIFIER)
		if seen[ptok.Text] {
			p.fail(ptok.Pos, "duplicate parameter %q", ptok.Text)
		}
		seen[ptok.Text] = true
		param, _ := p.table.NewChild(fn, symbols.Variable, ptok.Text, ptok.Pos)
		param.Type = ptyp
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)

	switch p.cur().Kind {
	case token.LBRACE:
		fn.Code = p.parseBlock(fn)
	case token.EQUALS:
		p.advance()
		blockSym, _ := p.table.NewChild(fn, symbols.Block, p.table.NextBlockName(), nameTok.Pos)
		expr := p.parseExpression(blockSym)
		p.expect(token.SEMICOLON)
		ret := ast.NewUnary(ast.Return, expr, expr.Pos)
		ret.Scope = blockSym
		fn.Code = &ast.Node{Kind: ast.Block, Children: []*ast.Node{ret}, Scope: blockSym, Pos: nameTok.Pos}
	case token.SEMICOLON:
		p.advance()
		fn.Kind = symbols.FunctionPointer
		p.table.NewChild(fn, symbols.Block, p.table.NextBlockName(), nameTok.Pos)
	default:
		p.fail(p.cur().Pos, "expected function body, got %s", p.cur().Kind)
	}
}
