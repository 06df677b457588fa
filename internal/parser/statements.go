package parser

import (
	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

// parseBlock parses "'{' stmt* '}'", creating a fresh anonymous Block symbol
// as a child of scope to hold whatever is declared directly inside it. A
// Function symbol stores its parameters and its implicit anonymous block
// symbol together as children.
func (p *Parser) parseBlock(scope *symbols.Symbol) *ast.Node {
	lbrace := p.expect(token.LBRACE)
	blockSym, existed := p.table.NewChild(scope, symbols.Block, p.table.NextBlockName(), lbrace.Pos)
	if existed {
		p.fail(lbrace.Pos, "internal: block name collision")
	}

	var stmts []*ast.Node
	for p.cur().Kind != token.RBRACE {
		if p.atEOF() {
			p.fail(p.cur().Pos, "unterminated block")
		}
		stmts = append(stmts, p.parseStatement(blockSym))
	}
	p.expect(token.RBRACE)
	return &ast.Node{Kind: ast.Block, Children: stmts, Scope: blockSym, Pos: lbrace.Pos}
}

func (p *Parser) parseStatement(scope *symbols.Symbol) *ast.Node {
	switch p.cur().Kind {
	case token.LBRACE:
		return p.parseBlock(scope)
	case token.IF:
		return p.parseIf(scope)
	case token.WHILE:
		return p.parseWhile(scope)
	case token.RETURN:
		return p.parseReturn(scope)
	case token.CONST:
		return p.parseLocalDecl(scope)
	case token.IDENTIFIER:
		if p.declSignatureLen() > 0 {
			return p.parseLocalDecl(scope)
		}
		return p.parseExpressionStatement(scope)
	default:
		return p.parseExpressionStatement(scope)
	}
}

// parseLocalDecl parses a local variable declaration statement, adding a
// Variable child of scope and wrapping it in a SymbolDefine AST node so the
// validator can check (and mark declared) initializers in textual order.
func (p *Parser) parseLocalDecl(scope *symbols.Symbol) *ast.Node {
	isConst := false
	if p.cur().Kind == token.CONST {
		isConst = true
		p.advance()
	}
	if p.declSignatureLen() == 0 {
		p.fail(p.cur().Pos, "expected variable declaration")
	}

	typ := p.parseTypeName()
	nameTok := p.expect(token.IDENTIFIER)

	var init *ast.Node
	if p.cur().Kind == token.EQUALS {
		p.advance()
		init = p.parseExpression(scope)
	}
	p.expect(token.SEMICOLON)

	sym, existed := p.table.NewChild(scope, symbols.Variable, nameTok.Text, nameTok.Pos)
	if existed {
		p.fail(nameTok.Pos, "duplicate symbol %q", nameTok.Text)
	}
	sym.Type = typ
	sym.IsConstant = isConst
	sym.Code = init

	return &ast.Node{Kind: ast.SymbolDefine, Payload: sym, Scope: scope, Pos: nameTok.Pos}
}

func (p *Parser) parseExpressionStatement(scope *symbols.Symbol) *ast.Node {
	expr := p.parseExpression(scope)
	p.expect(token.SEMICOLON)
	return expr
}

func (p *Parser) parseIf(scope *symbols.Symbol) *ast.Node {
	kw := p.advance() // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpression(scope)
	p.expect(token.RPAREN)
	thenBlk := p.parseBlock(scope)

	if p.cur().Kind != token.ELSE {
		return &ast.Node{Kind: ast.If, Children: []*ast.Node{cond, thenBlk}, Scope: scope, Pos: kw.Pos}
	}
	p.advance() // 'else'

	var elseBlk *ast.Node
	if p.cur().Kind == token.IF {
		elseBlk = p.parseIf(scope)
	} else {
		elseBlk = p.parseBlock(scope)
	}
	return &ast.Node{Kind: ast.IfElse, Children: []*ast.Node{cond, thenBlk, elseBlk}, Scope: scope, Pos: kw.Pos}
}

func (p *Parser) parseWhile(scope *symbols.Symbol) *ast.Node {
	kw := p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpression(scope)
	p.expect(token.RPAREN)
	body := p.parseBlock(scope)
	return &ast.Node{Kind: ast.While, Children: []*ast.Node{cond, body}, Scope: scope, Pos: kw.Pos}
}

func (p *Parser) parseReturn(scope *symbols.Symbol) *ast.Node {
	kw := p.advance() // 'return'
	if p.cur().Kind == token.SEMICOLON {
		p.advance()
		return &ast.Node{Kind: ast.Return, Scope: scope, Pos: kw.Pos}
	}
	expr := p.parseExpression(scope)
	p.expect(token.SEMICOLON)
	ret := ast.NewUnary(ast.Return, expr, kw.Pos)
	ret.Scope = scope
	return ret
}
