package parser

import (
	"strconv"

	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/container"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

// exprToken is a token.Token carrying the extra payload the simplification
// pass attaches to CALL and VERBATIM: their already-parsed argument
// ASTs. A plain operator or literal token carries no Args.
type exprToken struct {
	token.Token
	Args []*ast.Node
}

// precedence is the fixed binding-power table (higher binds
// tighter). Index/Dot/ModuleAccess share the top level.
var precedence = map[token.Kind]int{
	token.EQUALS:       1,
	token.OR:           2,
	token.AND:          3,
	token.IS:           4,
	token.ISNT:         4,
	token.LESSER:       5,
	token.GREATER:      5,
	token.LESSEREQUAL:  5,
	token.GREATEREQUAL: 5,
	token.PLUS:         6,
	token.MINUS:        6,
	token.STAR:         7,
	token.SLASH:        7,
	token.NEW:          8,
	token.FREE:         8,
	token.CAST:         9,
	token.DOT:          10,
	token.COLON:        10,
	token.INDEX:        10,
}

// operatorKind maps a binary operator token to its AST kind. Unary
// Cast/New/Free are handled separately in buildAST since they pop one
// operand instead of two.
var operatorKind = map[token.Kind]ast.Kind{
	token.PLUS:         ast.Add,
	token.MINUS:        ast.Sub,
	token.STAR:         ast.Mul,
	token.SLASH:        ast.Div,
	token.AND:          ast.LogicalAnd,
	token.OR:           ast.LogicalOr,
	token.IS:           ast.Eq,
	token.ISNT:         ast.NotEq,
	token.GREATER:      ast.Greater,
	token.LESSER:       ast.Lesser,
	token.GREATEREQUAL: ast.GreaterEqual,
	token.LESSEREQUAL:  ast.LesserEqual,
	token.EQUALS:       ast.Assign,
	token.DOT:          ast.Dot,
	token.COLON:        ast.ModuleAccess,
	token.INDEX:        ast.Index,
}

func isOperator(k token.Kind) bool {
	_, ok := precedence[k]
	return ok
}

// parseExpression peels the next expression slice off the token stream
// (stopping at a top-level comma, semicolon, '{', EOF, or an unmatched
// closing paren/bracket, without consuming that terminator) and parses it.
func (p *Parser) parseExpression(scope *symbols.Symbol) *ast.Node {
	raw := p.peelSlice()
	if len(raw) == 0 {
		p.fail(p.cur().Pos, "expected expression")
	}
	return p.parseExpressionTokens(raw, scope)
}

func (p *Parser) peelSlice() []token.Token {
	start := p.pos
	depth := 0
	for {
		t := p.cur()
		switch t.Kind {
		case token.EOF:
			return p.toks[start:p.pos]
		case token.LPAREN, token.LSQUARE:
			depth++
		case token.RPAREN, token.RSQUARE:
			if depth == 0 {
				return p.toks[start:p.pos]
			}
			depth--
		case token.COMMA, token.SEMICOLON, token.LBRACE:
			if depth == 0 {
				return p.toks[start:p.pos]
			}
		}
		p.pos++
	}
}

// parseExpressionTokens runs the full pipeline — simplify, shunting-yard,
// postfix-to-AST — over an already-isolated token slice.
func (p *Parser) parseExpressionTokens(raw []token.Token, scope *symbols.Symbol) *ast.Node {
	simplified := p.simplify(raw, scope)
	postfix := shuntingYard(simplified)
	return p.buildAST(postfix, scope)
}

// matchClose returns the index in toks of the delimiter that closes the
// paren/bracket opened at index open, tracking nesting depth across both
// delimiter kinds at once (a well-formed slice never actually mismatches
// paren against bracket, so kind-blind depth counting is sufficient).
func matchClose(toks []token.Token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.LPAREN, token.LSQUARE:
			depth++
		case token.RPAREN, token.RSQUARE:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(toks) - 1
}

// simplify rewrites CALL/VERBATIM-shaped identifier-paren sequences and
// CAST's type-in-parens into single synthetic tokens, and rewrites '[' expr
// ']' into the two-token sequence INDEX '(' ... ')' so indexing falls out of
// the normal binary-operator shunting-yard pass at its own precedence
//.
func (p *Parser) simplify(toks []token.Token, scope *symbols.Symbol) []exprToken {
	var out []exprToken
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.Kind == token.IDENTIFIER && i+1 < len(toks) && toks[i+1].Kind == token.LPAREN:
			end := matchClose(toks, i+1)
			args := p.parseArgs(toks[i+2:end], scope)
			out = append(out, exprToken{Token: token.Token{Kind: token.CALL, Text: t.Text, Pos: t.Pos}, Args: args})
			i = end + 1
		case t.Kind == token.VERBATIM && i+1 < len(toks) && toks[i+1].Kind == token.LPAREN:
			end := matchClose(toks, i+1)
			args := p.parseArgs(toks[i+2:end], scope)
			out = append(out, exprToken{Token: token.Token{Kind: token.VERBATIM, Text: t.Text, Pos: t.Pos}, Args: args})
			i = end + 1
		case t.Kind == token.CAST && i+1 < len(toks) && toks[i+1].Kind == token.LPAREN:
			if i+3 >= len(toks) || toks[i+2].Kind != token.IDENTIFIER || toks[i+3].Kind != token.RPAREN {
				p.fail(t.Pos, "malformed cast expression")
			}
			out = append(out, exprToken{Token: token.Token{Kind: token.CAST, Text: toks[i+2].Text, Pos: t.Pos}})
			i += 4
		case t.Kind == token.LSQUARE:
			end := matchClose(toks, i)
			out = append(out, exprToken{Token: token.Token{Kind: token.INDEX, Pos: t.Pos}})
			out = append(out, exprToken{Token: token.Token{Kind: token.LPAREN, Text: "(", Pos: t.Pos}})
			out = append(out, p.simplify(toks[i+1:end], scope)...)
			out = append(out, exprToken{Token: token.Token{Kind: token.RPAREN, Text: ")", Pos: toks[end].Pos}})
			i = end + 1
		default:
			out = append(out, exprToken{Token: t})
			i++
		}
	}
	return out
}

// parseArgs splits a CALL/VERBATIM argument list at top-level commas and
// parses each piece as its own expression, recursively.
func (p *Parser) parseArgs(toks []token.Token, scope *symbols.Symbol) []*ast.Node {
	if len(toks) == 0 {
		return nil
	}
	var args []*ast.Node
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Kind {
		case token.LPAREN, token.LSQUARE:
			depth++
		case token.RPAREN, token.RSQUARE:
			depth--
		case token.COMMA:
			if depth == 0 {
				args = append(args, p.parseExpressionTokens(toks[start:i], scope))
				start = i + 1
			}
		}
	}
	args = append(args, p.parseExpressionTokens(toks[start:], scope))
	return args
}

// shuntingYard converts a simplified infix token sequence to postfix order
// using the precedence table above. The operator stack and output queue are
// both a container.List: PushFront/PopFront give the operator stack its LIFO
// discipline, and PushBack/ToSlice accumulate the output in postfix order.
func shuntingYard(toks []exprToken) []exprToken {
	output := container.NewList[exprToken]()
	ops := container.NewList[exprToken]()

	for _, t := range toks {
		switch {
		case t.Kind == token.LPAREN:
			ops.PushFront(t)
		case t.Kind == token.RPAREN:
			for {
				top, ok := ops.PeekFront()
				if !ok || top.Kind == token.LPAREN {
					break
				}
				output.PushBack(top)
				ops.PopFront()
			}
			if _, ok := ops.PeekFront(); ok {
				ops.PopFront() // discard the matching LPAREN
			}
		case isOperator(t.Kind):
			for {
				top, ok := ops.PeekFront()
				if !ok || top.Kind == token.LPAREN || precedence[top.Kind] < precedence[t.Kind] {
					break
				}
				output.PushBack(top)
				ops.PopFront()
			}
			ops.PushFront(t)
		default:
			output.PushBack(t)
		}
	}
	for {
		top, ok := ops.PopFront()
		if !ok {
			break
		}
		output.PushBack(top)
	}
	return output.ToSlice()
}

// buildAST walks a postfix token queue with an operand stack, producing one
// AST. Binary operators pop two operands (child[0]=right, child[1]=left);
// Cast/New/Free pop one.
func (p *Parser) buildAST(postfix []exprToken, scope *symbols.Symbol) *ast.Node {
	var stack []*ast.Node
	pop := func() *ast.Node {
		if len(stack) == 0 {
			p.fail(token.Position{File: p.file}, "internal: malformed expression")
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, t := range postfix {
		var node *ast.Node
		switch t.Kind {
		case token.INTLITERAL:
			v, _ := strconv.Atoi(t.Text)
			node = ast.NewLeaf(ast.IntLiteral, v, t.Pos)
		case token.REALLITERAL:
			v, _ := strconv.ParseFloat(t.Text, 64)
			node = ast.NewLeaf(ast.RealLiteral, v, t.Pos)
		case token.CHARLITERAL:
			node = ast.NewLeaf(ast.CharLiteral, t.Text, t.Pos)
		case token.STRINGLITERAL:
			node = ast.NewLeaf(ast.StringLiteral, t.Text, t.Pos)
		case token.TRUE:
			node = ast.NewLeaf(ast.True, nil, t.Pos)
		case token.FALSE:
			node = ast.NewLeaf(ast.False, nil, t.Pos)
		case token.NULL:
			node = ast.NewLeaf(ast.Null, nil, t.Pos)
		case token.IDENTIFIER:
			node = ast.NewLeaf(ast.Var, t.Text, t.Pos)
		case token.CALL:
			node = &ast.Node{Kind: ast.Call, Payload: t.Text, Children: t.Args, Pos: t.Pos}
		case token.VERBATIM:
			node = &ast.Node{Kind: ast.Verbatim, Children: t.Args, Pos: t.Pos}
		case token.CAST:
			operand := pop()
			node = ast.NewUnary(ast.Cast, operand, t.Pos)
			node.Payload = t.Text
		case token.NEW:
			node = ast.NewUnary(ast.New, pop(), t.Pos)
		case token.FREE:
			node = ast.NewUnary(ast.Free, pop(), t.Pos)
		default:
			kind, ok := operatorKind[t.Kind]
			if !ok {
				p.fail(t.Pos, "unexpected token in expression: %s", t.Kind)
			}
			right := pop()
			left := pop()
			node = ast.NewBinary(kind, right, left, t.Pos)
		}
		node.Scope = scope
		stack = append(stack, node)
	}

	if len(stack) != 1 {
		p.fail(token.Position{File: p.file}, "internal: malformed expression")
	}
	return stack[0]
}
