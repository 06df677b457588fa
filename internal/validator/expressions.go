package validator

import (
	"strings"

	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

func (v *Validator) scopeOf(n *ast.Node) *symbols.Symbol {
	s, _ := n.Scope.(*symbols.Symbol)
	return s
}

// checkExpr type-checks an expression AST and returns its resulting type
// string. It assumes the node is not itself the direct operand of
// a New node; checkNew re-enters specific cases with that context.
func (v *Validator) checkExpr(n *ast.Node) string {
	return v.checkExprCtx(n, false)
}

func (v *Validator) checkExprCtx(n *ast.Node, newCtx bool) string {
	switch n.Kind {
	case ast.IntLiteral:
		return symbols.Int
	case ast.RealLiteral:
		return symbols.Real
	case ast.CharLiteral:
		return symbols.Char
	case ast.StringLiteral:
		return symbols.ArrayOf(symbols.Char)
	case ast.True, ast.False:
		return symbols.Boolean
	case ast.Null:
		return symbols.None

	case ast.Var:
		name, _ := n.Payload.(string)
		sym, ok := symbols.ScopedLookup(v.scopeOf(n), name)
		if !ok {
			v.fail(n.Pos, "unknown symbol %q", name)
			return symbols.None
		}
		if !sym.IsDeclared {
			v.fail(n.Pos, "use of undeclared variable %q", name)
		}
		return sym.Type

	case ast.Add, ast.Sub, ast.Mul, ast.Div:
		rt := v.checkExpr(n.Right())
		lt := v.checkExpr(n.Left())
		if !v.isNumeric(rt) || !v.isNumeric(lt) {
			v.fail(n.Pos, "arithmetic operands must be numeric, got %s and %s", lt, rt)
		}
		if rt == symbols.Real || lt == symbols.Real {
			return symbols.Real
		}
		return symbols.Int

	case ast.Greater, ast.Lesser, ast.GreaterEqual, ast.LesserEqual:
		rt := v.checkExpr(n.Right())
		lt := v.checkExpr(n.Left())
		if !v.isNumeric(rt) || !v.isNumeric(lt) {
			v.fail(n.Pos, "comparison operands must be numeric, got %s and %s", lt, rt)
		}
		return symbols.Boolean

	case ast.Eq, ast.NotEq:
		v.checkExpr(n.Right())
		v.checkExpr(n.Left())
		return symbols.Boolean

	case ast.LogicalAnd, ast.LogicalOr:
		rt := v.checkExpr(n.Right())
		lt := v.checkExpr(n.Left())
		if rt != symbols.Boolean || lt != symbols.Boolean {
			v.fail(n.Pos, "boolean operands must be boolean, got %s and %s", lt, rt)
		}
		return symbols.Boolean

	case ast.Assign:
		return v.checkAssign(n)
	case ast.Dot:
		return v.checkDot(n)
	case ast.Index:
		return v.checkIndex(n, newCtx)
	case ast.ModuleAccess:
		return v.checkModuleAccess(n)
	case ast.Call:
		return v.checkCall(n, newCtx)
	case ast.Cast:
		return v.checkCast(n)
	case ast.New:
		return v.checkNew(n)
	case ast.Free:
		v.checkExpr(n.Operand())
		return symbols.None
	case ast.Verbatim:
		for _, c := range n.Children {
			v.checkExpr(c)
		}
		return symbols.Any

	default:
		v.fail(n.Pos, "internal: unexpected expression kind %d", int(n.Kind))
		return symbols.None
	}
}

func (v *Validator) checkAssign(n *ast.Node) string {
	left := n.Left()
	switch left.Kind {
	case ast.Var, ast.Dot, ast.Index, ast.ModuleAccess:
	default:
		v.fail(n.Pos, "left-hand side of assignment is not a location")
	}

	leftType := v.checkExpr(left)
	rightType := v.checkExpr(n.Right())

	if left.Kind == ast.Var {
		name, _ := left.Payload.(string)
		if sym, ok := symbols.ScopedLookup(v.scopeOf(left), name); ok {
			if sym.IsConstant {
				v.fail(n.Pos, "cannot assign to constant %q", name)
			}
			sym.IsDeclared = true
		}
	}

	if !v.typesMatch(leftType, rightType) {
		v.fail(n.Pos, "cannot assign %s to %s", rightType, leftType)
	}
	return leftType
}

// checkDot handles "expr.field": the right side is a bare
// identifier read directly off the Var node's payload, never resolved via
// scoped lookup, since it names a struct field rather than a variable. The
// one built-in field is "length" on an array.
func (v *Validator) checkDot(n *ast.Node) string {
	leftType := v.checkExpr(n.Left())
	fieldName, _ := n.Right().Payload.(string)

	if symbols.IsArray(leftType) && fieldName == "length" {
		return symbols.Int
	}

	structSym, ok := v.table.LookupType(leftType)
	if !ok || structSym.Kind != symbols.StructKind {
		v.fail(n.Pos, "%s is not a struct type", leftType)
		return symbols.None
	}
	field, ok := structSym.Lookup(fieldName)
	if !ok {
		v.fail(n.Pos, "unknown field %q on %s", fieldName, structSym.Name)
		return symbols.None
	}
	return field.Type
}

// checkIndex handles both ordinary indexing (left is an array-typed
// expression) and the array-size allocation form "new Type[size]", where
// left is a bare Var naming a type rather than a variable.
func (v *Validator) checkIndex(n *ast.Node, newCtx bool) string {
	idxType := v.checkExpr(n.Right())
	if idxType != symbols.Int {
		v.fail(n.Pos, "index expression must be int, got %s", idxType)
	}

	left := n.Left()
	if left.Kind == ast.Var {
		name, _ := left.Payload.(string)
		if v.isTypeName(v.scopeOf(n), name) {
			if !newCtx {
				v.fail(n.Pos, "array-size allocation must be the operand of new")
			}
			return symbols.ArrayOf(name)
		}
	}

	leftType := v.checkExpr(left)
	if !symbols.IsArray(leftType) {
		v.fail(n.Pos, "cannot index non-array type %s", leftType)
		return symbols.None
	}
	return symbols.ElementType(leftType)
}

func (v *Validator) isTypeName(scope *symbols.Symbol, name string) bool {
	if symbols.IsPrimitive(name) {
		return true
	}
	sym, ok := symbols.ScopedLookup(scope, name)
	return ok && (sym.Kind == symbols.StructKind || sym.Kind == symbols.EnumKind)
}

// checkCall handles both ordinary calls and, when calleeName already ends
// in " array", the array-literal allocation form "new int array(1, 2, 3)"
//.
func (v *Validator) checkCall(n *ast.Node, newCtx bool) string {
	scope := v.scopeOf(n)
	calleeName, _ := n.Payload.(string)

	if strings.HasSuffix(calleeName, symbols.ArraySuffix) {
		elem := symbols.ElementType(calleeName)
		for _, arg := range n.Children {
			at := v.checkExpr(arg)
			if !v.typesMatch(elem, at) {
				v.fail(arg.Pos, "array literal element must be %s, got %s", elem, at)
			}
		}
		if !newCtx {
			v.fail(n.Pos, "array literal must be the operand of new")
		}
		return calleeName
	}

	sym, ok := symbols.ScopedLookup(scope, calleeName)
	if !ok {
		v.fail(n.Pos, "unknown symbol %q", calleeName)
		return symbols.None
	}
	return v.checkCallAgainst(n, sym, newCtx)
}

func (v *Validator) checkCallAgainst(n *ast.Node, sym *symbols.Symbol, newCtx bool) string {
	switch sym.Kind {
	case symbols.StructKind:
		if !newCtx {
			v.fail(n.Pos, "struct initialization must be the operand of new")
		}
		fields := nonBlockChildren(sym) // struct fields carry no block child, but nonBlockChildren is still safe to reuse
		if len(n.Children) != 0 && len(n.Children) != len(fields) {
			v.fail(n.Pos, "%s expects %d field(s), got %d", sym.Name, len(fields), len(n.Children))
		}
		for i, arg := range n.Children {
			at := v.checkExpr(arg)
			if i < len(fields) && !v.typesMatch(fields[i].Type, at) {
				v.fail(arg.Pos, "field %d of %s expects %s, got %s", i, sym.Name, fields[i].Type, at)
			}
		}
		return sym.CanonicalType()

	case symbols.Function, symbols.FunctionPointer:
		v.checkStaticAccess(n, sym)
		params := nonBlockChildren(sym)
		want, got := len(params), len(n.Children)
		if got != want {
			v.fail(n.Pos, "%q expects %d argument(s), got %d", sym.Name, want, got)
		}
		for i, arg := range n.Children {
			at := v.checkExpr(arg)
			if i < len(params) && !v.typesMatch(params[i].Type, at) {
				v.fail(arg.Pos, "argument %d to %q expects %s, got %s", i, sym.Name, params[i].Type, at)
			}
		}
		return sym.Type

	default:
		v.fail(n.Pos, "%q is not callable", sym.Name)
		return symbols.None
	}
}

// checkStaticAccess enforces the Glossary's static-module rule: a
// non-static module may not call a function declared static, even one of
// its own members.
func (v *Validator) checkStaticAccess(n *ast.Node, callee *symbols.Symbol) {
	if !callee.IsStatic {
		return
	}
	callerModule := enclosingModule(v.scopeOf(n))
	if callerModule != nil && !callerModule.IsStatic {
		v.fail(n.Pos, "non-static module %q cannot call static function %q", callerModule.Name, callee.Name)
	}
}

// checkModuleAccess handles "Mod:member" and "Mod:member(args)": the left
// side names a module rather than a value and is never itself type-checked
// as an expression.
func (v *Validator) checkModuleAccess(n *ast.Node) string {
	left := n.Left()
	if left.Kind != ast.Var {
		v.fail(n.Pos, "left of ':' must be a module name")
		return symbols.None
	}
	modName, _ := left.Payload.(string)
	right := n.Right()

	switch right.Kind {
	case ast.Var:
		memberName, _ := right.Payload.(string)
		member := v.explicitLookup(v.scopeOf(n), modName, memberName, n.Pos)
		if member == nil {
			return symbols.None
		}
		return member.Type
	case ast.Call:
		memberName, _ := right.Payload.(string)
		member := v.explicitLookup(v.scopeOf(n), modName, memberName, n.Pos)
		if member == nil {
			return symbols.None
		}
		return v.checkCallAgainst(right, member, false)
	default:
		v.fail(n.Pos, "right of ':' must be an identifier or call")
		return symbols.None
	}
}

// explicitLookup resolves modName at the program root, enforces the
// static-module access rule, then looks up memberName among its
// (non-private) direct children.
func (v *Validator) explicitLookup(scope *symbols.Symbol, modName, memberName string, pos token.Position) *symbols.Symbol {
	mod, ok := v.table.Root.Lookup(modName)
	if !ok || mod.Kind != symbols.Module {
		v.fail(pos, "unknown module %q", modName)
		return nil
	}
	if mod.IsStatic {
		caller := enclosingModule(scope)
		if caller == nil || !caller.IsStatic {
			v.fail(pos, "cannot access static module %q from a non-static scope", modName)
			return nil
		}
	}
	member, ok := mod.Lookup(memberName)
	if !ok || member.IsPrivate {
		v.fail(pos, "unknown or private member %q of module %q", memberName, modName)
		return nil
	}
	return member
}

// checkCast implements the cast compatibility rule: identity, Any on
// either side, enum<->int, and int<->real all succeed; everything else is a
// fatal error.
func (v *Validator) checkCast(n *ast.Node) string {
	rawTarget, _ := n.Payload.(string)
	target := v.resolveTypeString(v.scopeOf(n), rawTarget)
	operandType := v.checkExprCtx(n.Operand(), false)

	if target == symbols.None {
		v.fail(n.Pos, "cannot cast to None")
		return symbols.None
	}
	if target == operandType || target == symbols.Any || operandType == symbols.Any {
		return target
	}
	if enumSym, ok := v.table.LookupType(target); ok && enumSym.Kind == symbols.EnumKind && operandType == symbols.Int {
		return target
	}
	if enumSym, ok := v.table.LookupType(operandType); ok && enumSym.Kind == symbols.EnumKind && target == symbols.Int {
		return target
	}
	if (target == symbols.Real && operandType == symbols.Int) || (target == symbols.Int && operandType == symbols.Real) {
		return target
	}

	v.fail(n.Pos, "invalid cast from %s to %s", operandType, target)
	return target
}

// checkNew requires new's operand to be a struct/array
// allocation call, an array-size Index, or a qualified ModuleAccess struct
// initializer, evaluated with the New-operand context flag set so the
// ordinarily-illegal allocation forms are accepted.
func (v *Validator) checkNew(n *ast.Node) string {
	operand := n.Operand()
	switch operand.Kind {
	case ast.Call, ast.Index, ast.ModuleAccess:
	default:
		v.fail(n.Pos, "operand of new must be a call, index, or module access")
	}
	return v.checkExprCtx(operand, true)
}
