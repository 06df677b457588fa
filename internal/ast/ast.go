// Package ast defines the expression/statement tree. A Node is
// deliberately decoupled from the symbol tree: its Payload and Scope fields
// are untyped (any) so that this package never imports internal/symbols —
// internal/symbols imports ast, and the packages that walk both trees
// (validator, generator) perform the type assertions back to
// *symbols.Symbol where a node carries a Symbol payload or a weak scope
// pointer. Keeping symbols out of ast avoids an import cycle between the
// two packages.
package ast

import "github.com/orange-lang/orangec/internal/token"

// Kind enumerates every AST node shape, partitioned () into
// statements, operators, and leaves.
type Kind int

const (
	// Statements.
	Block Kind = iota
	SymbolDefine
	If
	IfElse
	While
	Return

	// Operators.
	Add
	Sub
	Mul
	Div
	LogicalAnd
	LogicalOr
	Eq
	NotEq
	Greater
	Lesser
	GreaterEqual
	LesserEqual
	Assign
	Dot
	Index
	ModuleAccess
	Cast
	New
	Free

	// Leaves.
	Var
	IntLiteral
	RealLiteral
	CharLiteral
	StringLiteral
	True
	False
	Null
	Call
	Verbatim
	Nop
)

// unaryKinds have exactly one child: the operand. Every other operator AST
// node has exactly 2 children except Cast/New/Free/Return, which have 1.
var unaryKinds = map[Kind]bool{
	Cast:   true,
	New:    true,
	Free:   true,
	Return: true,
}

// IsUnary reports whether k takes a single operand rather than two.
func IsUnary(k Kind) bool { return unaryKinds[k] }

// Node is a single point in the expression/statement tree. Payload holds an
// int, a float64, a string (including the name of a Var or Call leaf), or
// (for SymbolDefine) a *symbols.Symbol behind the any — see the package doc
// comment. Scope is a
// weak, non-owning pointer to the enclosing symbol-tree scope, also typed
// any for the same reason.
type Node struct {
	Kind     Kind
	Payload  any
	Children []*Node
	Scope    any
	Pos      token.Position
}

// NewLeaf builds a childless node (literals, Var, Nop).
func NewLeaf(kind Kind, payload any, pos token.Position) *Node {
	return &Node{Kind: kind, Payload: payload, Pos: pos}
}

// NewUnary builds a single-operand node (Cast, New, Free, Return).
func NewUnary(kind Kind, operand *Node, pos token.Position) *Node {
	return &Node{Kind: kind, Children: []*Node{operand}, Pos: pos}
}

// NewBinary builds a two-operand node. Per the operand-order convention,
// right is stored at index 0 and left at index 1: callers must pass them
// in that order, not (left, right).
func NewBinary(kind Kind, right, left *Node, pos token.Position) *Node {
	return &Node{Kind: kind, Children: []*Node{right, left}, Pos: pos}
}

// Right returns child[0], the right-hand operand under the operand-order convention.
func (n *Node) Right() *Node {
	if len(n.Children) < 1 {
		return nil
	}
	return n.Children[0]
}

// Left returns child[1], the left-hand operand under the operand-order convention.
func (n *Node) Left() *Node {
	if len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

// Operand returns child[0] of a unary node (Cast/New/Free/Return).
func (n *Node) Operand() *Node {
	if len(n.Children) < 1 {
		return nil
	}
	return n.Children[0]
}
