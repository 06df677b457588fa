package symbols

import "strings"

// Primitive type spellings.
const (
	Int     = "int"
	Char    = "char"
	Boolean = "boolean"
	Void    = "void"
	Real    = "real"
	Byte    = "byte"
)

// Special type spellings.
const (
	None = "None"
	Any  = "Any"
)

// ArraySuffix is the literal (space included) that turns a base type into
// an array-of-base type. Stacking is allowed: "int array array".
const ArraySuffix = " array"

var primitives = map[string]bool{
	Int: true, Char: true, Boolean: true, Void: true, Real: true, Byte: true,
}

// IsPrimitive reports whether t is one of the six primitive spellings.
// Arrays of primitives are not themselves primitive.
func IsPrimitive(t string) bool {
	return primitives[t]
}

// IsArray reports whether t has the " array" suffix.
func IsArray(t string) bool {
	return strings.HasSuffix(t, ArraySuffix)
}

// ArrayOf appends the array suffix to base, supporting stacked arrays.
func ArrayOf(base string) string {
	return base + ArraySuffix
}

// ElementType strips one " array" suffix; callers must check IsArray first.
func ElementType(t string) string {
	return strings.TrimSuffix(t, ArraySuffix)
}

// IsUnresolvedQualified reports whether t is a parser-produced "Mod$Type"
// form awaiting pass-1 resolution: qualified user types Mod:Type arrive
// from the parser as Mod$Type.
func IsUnresolvedQualified(t string) bool {
	return strings.Contains(t, "$")
}

// SplitQualified splits an unresolved "Mod$Type" string into its module and
// member parts. Callers must check IsUnresolvedQualified first.
func SplitQualified(t string) (module, member string) {
	i := strings.IndexByte(t, '$')
	return t[:i], t[i+1:]
}

// ScopedLookup walks from scope upward through Parent, returning the first
// symbol found with the given name in any enclosing scope's Children
//. ok is false if the program root is reached without a hit.
func ScopedLookup(scope *Symbol, name string) (*Symbol, bool) {
	for s := scope; s != nil; s = s.Parent {
		if found, ok := s.Lookup(name); ok {
			return found, true
		}
	}
	return nil, false
}
