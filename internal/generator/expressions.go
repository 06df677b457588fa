package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
)

func (g *Generator) scopeOf(n *ast.Node) *symbols.Symbol {
	s, _ := n.Scope.(*symbols.Symbol)
	return s
}

// emitStatement renders a statement AST node as JS.
func (g *Generator) emitStatement(n *ast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case ast.Block:
		var sb strings.Builder
		for _, c := range n.Children {
			sb.WriteString(g.emitStatement(c))
		}
		return sb.String()
	case ast.If:
		return fmt.Sprintf("if(%s){%s}", g.emitExpr(n.Children[0]), g.emitStatement(n.Children[1]))
	case ast.IfElse:
		return fmt.Sprintf("if(%s){%s}else{%s}",
			g.emitExpr(n.Children[0]), g.emitStatement(n.Children[1]), g.emitStatement(n.Children[2]))
	case ast.While:
		return fmt.Sprintf("while(%s){%s}", g.emitExpr(n.Children[0]), g.emitStatement(n.Children[1]))
	case ast.Return:
		if len(n.Children) == 0 {
			return "return;"
		}
		return fmt.Sprintf("return %s;", g.emitExpr(n.Children[0]))
	case ast.SymbolDefine:
		sym, _ := n.Payload.(*symbols.Symbol)
		if sym == nil {
			return ""
		}
		return g.emitGlobal(sym)
	default:
		return g.emitExpr(n) + ";"
	}
}

// emitExpr renders an expression AST node as JS.
func (g *Generator) emitExpr(n *ast.Node) string {
	switch n.Kind {
	case ast.IntLiteral:
		v, _ := n.Payload.(int)
		return strconv.Itoa(v)
	case ast.RealLiteral:
		v, _ := n.Payload.(float64)
		return strconv.FormatFloat(v, 'g', -1, 64)
	case ast.CharLiteral:
		v, _ := n.Payload.(string)
		return strconv.QuoteRune(runeOf(v))
	case ast.StringLiteral:
		v, _ := n.Payload.(string)
		return strconv.Quote(v)
	case ast.True:
		return "true"
	case ast.False:
		return "false"
	case ast.Null:
		return "null"

	case ast.Var:
		name, _ := n.Payload.(string)
		return g.emitIdentifier(g.scopeOf(n), name)

	case ast.Assign:
		return fmt.Sprintf("%s=%s", g.emitExpr(n.Left()), g.emitExpr(n.Right()))

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.LogicalAnd, ast.LogicalOr,
		ast.Eq, ast.NotEq, ast.Greater, ast.Lesser, ast.GreaterEqual, ast.LesserEqual:
		return fmt.Sprintf("%s%s%s", g.emitExpr(n.Left()), jsOperator(n.Kind), g.emitExpr(n.Right()))

	case ast.Dot:
		// A field keeps its source name as the JS property name, so it is
		// emitted bare rather than resolved through the scope chain.
		fieldName, _ := n.Right().Payload.(string)
		return fmt.Sprintf("%s.%s", g.emitExpr(n.Left()), fieldName)

	case ast.Index:
		return fmt.Sprintf("%s[%s]", g.emitExpr(n.Left()), g.emitExpr(n.Right()))

	case ast.ModuleAccess:
		return g.emitModuleAccess(n)

	case ast.Call:
		return g.emitCall(n)

	case ast.Cast:
		// JavaScript has no static types; the cast contributes nothing but
		// its operand's value.
		return g.emitExpr(n.Operand())

	case ast.New:
		return g.emitNew(n)

	case ast.Free:
		return "" // JavaScript is garbage-collected; free emits nothing.

	case ast.Verbatim:
		var sb strings.Builder
		for _, c := range n.Children {
			if c.Kind == ast.StringLiteral {
				text, _ := c.Payload.(string)
				sb.WriteString(text)
				continue
			}
			sb.WriteString(g.emitExpr(c))
		}
		return sb.String()

	default:
		return ""
	}
}

func runeOf(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func jsOperator(k ast.Kind) string {
	switch k {
	case ast.Add:
		return "+"
	case ast.Sub:
		return "-"
	case ast.Mul:
		return "*"
	case ast.Div:
		return "/"
	case ast.LogicalAnd:
		return "&&"
	case ast.LogicalOr:
		return "||"
	case ast.Eq:
		return "==="
	case ast.NotEq:
		return "!=="
	case ast.Greater:
		return ">"
	case ast.Lesser:
		return "<"
	case ast.GreaterEqual:
		return ">="
	case ast.LesserEqual:
		return "<="
	default:
		return "?"
	}
}

// emitIdentifier renders a Var leaf's name: "_<id>" when it resolves to a
// known symbol from scope, otherwise the bare name.
func (g *Generator) emitIdentifier(scope *symbols.Symbol, name string) string {
	if scope == nil {
		return name
	}
	if sym, ok := symbols.ScopedLookup(scope, name); ok {
		return sym.EmittedName()
	}
	return name
}

func (g *Generator) resolveModuleMember(modName, memberName string) (*symbols.Symbol, bool) {
	mod, ok := g.table.Root.Lookup(modName)
	if !ok {
		return nil, false
	}
	return mod.Lookup(memberName)
}

// emitModuleAccess emits the resolved target symbol directly, since its
// "_<id>" is already globally unique — no "Mod." qualification is needed
// in the generated JS.
func (g *Generator) emitModuleAccess(n *ast.Node) string {
	left := n.Left()
	modName, _ := left.Payload.(string)
	right := n.Right()

	memberName, _ := right.Payload.(string)
	member, ok := g.resolveModuleMember(modName, memberName)

	switch right.Kind {
	case ast.Var:
		if ok {
			return member.EmittedName()
		}
		return memberName
	case ast.Call:
		name := memberName
		if ok {
			name = member.EmittedName()
		}
		return fmt.Sprintf("%s(%s)", name, g.emitArgs(right.Children))
	default:
		return ""
	}
}

func (g *Generator) emitCall(n *ast.Node) string {
	calleeName, _ := n.Payload.(string)

	if strings.HasSuffix(calleeName, symbols.ArraySuffix) {
		return fmt.Sprintf("[%s]", g.emitArgs(n.Children))
	}

	scope := g.scopeOf(n)
	if sym, ok := symbols.ScopedLookup(scope, calleeName); ok {
		return fmt.Sprintf("%s(%s)", sym.EmittedName(), g.emitArgs(n.Children))
	}
	return fmt.Sprintf("%s(%s)", calleeName, g.emitArgs(n.Children))
}

func (g *Generator) emitArgs(args []*ast.Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.emitExpr(a)
	}
	return strings.Join(parts, ",")
}

// emitNew handles the three new-operand shapes: an array-size
// allocation (Index) becomes "Array(<size>)"; an array-literal pseudo-call
// (its callee ends in " array") needs no "new" at all, since a JS array
// literal is already a complete value — only its elements are emitted;
// everything else (struct initialization, a plain function call used as an
// allocator) gets the literal "new" prefix.
func (g *Generator) emitNew(n *ast.Node) string {
	operand := n.Operand()
	switch {
	case operand.Kind == ast.Index:
		size, _ := operand.Right().Payload.(int)
		return fmt.Sprintf("Array(%d)", size)
	case operand.Kind == ast.Call && isArrayLiteralCall(operand):
		return g.emitExpr(operand)
	default:
		return "new " + g.emitExpr(operand)
	}
}

func isArrayLiteralCall(n *ast.Node) bool {
	name, _ := n.Payload.(string)
	return strings.HasSuffix(name, symbols.ArraySuffix)
}
