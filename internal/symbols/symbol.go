// Package symbols implements the symbol tree: the program,
// module, struct, enum, variable, function(-pointer), and block nodes the
// parser builds alongside each symbol's AST, plus the process-wide type map
// and id counter.
package symbols

import (
	"strconv"
	"strings"

	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/container"
	"github.com/orange-lang/orangec/internal/token"
)

// Kind identifies what a Symbol represents.
type Kind int

const (
	Program Kind = iota
	Module
	StructKind
	EnumKind
	Variable
	FunctionPointer
	Function
	Block
)

// BlockNamePrefix marks the synthetic names given to a function's or
// nested block's anonymous block symbol, ("distinguished by a
// _block prefix in their synthetic names").
const BlockNamePrefix = "_block"

// Symbol is a single node of the symbol tree. Children preserves insertion
// order (parameters and enum variants rely on it); Parent is a borrowed,
// non-owning back-reference.
type Symbol struct {
	Kind     Kind
	Name     string
	Type     string
	ID       int
	Parent   *Symbol
	Children *container.OrderedMap[*Symbol]

	IsPrivate  bool
	IsStatic   bool
	IsConstant bool
	IsDeclared bool

	Code *ast.Node
	Pos  token.Position
}

// newSymbol builds a Symbol with an empty Children map; callers must still
// register it with a Table to receive its ID and (for structs/enums) its
// type-map entry.
func newSymbol(kind Kind, name string, pos token.Position) *Symbol {
	return &Symbol{
		Kind:     kind,
		Name:     name,
		Children: container.NewOrderedMap[*Symbol](),
		Pos:      pos,
	}
}

// AddChild inserts child under s, setting child's Parent. It reports
// whether a child of that name already existed, so callers can turn a
// collision into a duplicate-name fatal error for parameter lists (and, by
// the same invariant, for any sibling scope).
func (s *Symbol) AddChild(child *Symbol) (existed bool) {
	child.Parent = s
	return s.Children.Put(child.Name, child)
}

// Lookup finds a direct child by name.
func (s *Symbol) Lookup(name string) (*Symbol, bool) {
	return s.Children.Get(name)
}

// base36 encodes id the way the generator and canonical type strings do:
// lowercase base-36, no padding.
func base36(id int) string {
	return strconv.FormatInt(int64(id), 36)
}

// EmittedName is the generator's "_<base36-id>" rendering of the symbol.
func (s *Symbol) EmittedName() string {
	return "_" + base36(s.ID)
}

// CanonicalType is the "<name>#<base36-id>" form a Struct/Enum symbol's own
// type resolves to. Only meaningful for Struct/Enum symbols.
func (s *Symbol) CanonicalType() string {
	return s.Name + "#" + base36(s.ID)
}

// IsBlockChild reports whether name is a synthetic block name, used by the
// generator to skip emitting it as a parameter.
func IsBlockChild(name string) bool {
	return strings.HasPrefix(name, BlockNamePrefix)
}
