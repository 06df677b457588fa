package validator

import (
	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
)

// checkStatement walks a statement AST. SymbolDefine is the one
// case that re-enters ordinary Variable validation, in textual order, so
// that a local's IsDeclared only becomes true once its own declaration
// statement has executed — see the Block case in validate().
func (v *Validator) checkStatement(n *ast.Node) {
	switch n.Kind {
	case ast.Block:
		for _, c := range n.Children {
			v.checkStatement(c)
		}
	case ast.If:
		v.requireBoolean(n.Children[0])
		v.checkStatement(n.Children[1])
	case ast.IfElse:
		v.requireBoolean(n.Children[0])
		v.checkStatement(n.Children[1])
		v.checkStatement(n.Children[2])
	case ast.While:
		v.requireBoolean(n.Children[0])
		v.checkStatement(n.Children[1])
	case ast.Return:
		v.checkReturn(n)
	case ast.SymbolDefine:
		sym, _ := n.Payload.(*symbols.Symbol)
		if sym != nil {
			v.validate(sym)
		}
	default:
		v.checkExpr(n)
	}
}

func (v *Validator) requireBoolean(n *ast.Node) {
	t := v.checkExpr(n)
	if t != symbols.Boolean {
		v.fail(n.Pos, "condition must be boolean, got %s", t)
	}
}

func (v *Validator) checkReturn(n *ast.Node) {
	fn := enclosingFunction(v.scopeOf(n))
	if fn == nil {
		v.fail(n.Pos, "return outside function")
		return
	}
	if len(n.Children) == 0 {
		if fn.Type != symbols.Void {
			v.fail(n.Pos, "missing return value for non-void function %q", fn.Name)
		}
		return
	}
	rt := v.checkExpr(n.Children[0])
	if !v.typesMatch(fn.Type, rt) {
		v.fail(n.Pos, "return type mismatch in %q: expected %s, got %s", fn.Name, fn.Type, rt)
	}
}
