package symbols

import "github.com/orange-lang/orangec/internal/token"

// Table is the process-wide compilation context: a monotonic id counter and
// the type map ("<name>#<id>" → Symbol), created once per compilation and
// threaded explicitly rather than kept as package globals.
type Table struct {
	nextID  int
	typeMap map[string]*Symbol
	Root    *Symbol
}

// NewTable creates a Table with a fresh Program root symbol.
func NewTable(file string) *Table {
	t := &Table{typeMap: make(map[string]*Symbol)}
	t.Root = t.New(Program, "<program>", token.Position{File: file})
	return t
}

// New allocates a Symbol, assigns it the next id, and — for Struct/Enum
// kinds — registers it in the type map under its canonical type string. It
// does not link the symbol under any parent; NewChild does that.
func (t *Table) New(kind Kind, name string, pos token.Position) *Symbol {
	s := newSymbol(kind, name, pos)
	s.ID = t.nextID
	t.nextID++
	if kind == StructKind || kind == EnumKind {
		t.typeMap[s.CanonicalType()] = s
	}
	return s
}

// NewChild is a convenience that allocates a symbol and immediately adds it
// as parent's child, reporting a duplicate-name collision the same way
// AddChild does.
func (t *Table) NewChild(parent *Symbol, kind Kind, name string, pos token.Position) (*Symbol, bool) {
	s := t.New(kind, name, pos)
	existed := parent.AddChild(s)
	return s, existed
}

// LookupType resolves a canonical "<name>#<id>" string to its Symbol.
func (t *Table) LookupType(canonical string) (*Symbol, bool) {
	s, ok := t.typeMap[canonical]
	return s, ok
}

// NextBlockName returns the next unused "_block<id>" style name for an
// anonymous block symbol, using the id the block is about to receive so
// names never collide within the same parent.
func (t *Table) NextBlockName() string {
	return BlockNamePrefix + base36(t.nextID)
}
