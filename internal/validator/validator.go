// Package validator implements the two-pass Orange semantic checker: pass
// 1 resolves every declared type string to its canonical form, and pass 2
// walks the symbol tree and each symbol's AST checking
// type compatibility, scoping, and the handful of program-shape invariants
// (exactly one "start" function, no blocks directly inside a module, and so
// on).
//
// Like the parser, a Validator aborts the whole walk on its first error
// via the same recover-based bailout the parser package uses.
package validator

import (
	"github.com/orange-lang/orangec/internal/errors"
	"github.com/orange-lang/orangec/internal/symbols"
	"github.com/orange-lang/orangec/internal/token"
)

type Validator struct {
	table   *symbols.Table
	sources map[string]string
}

type bailout struct {
	err *errors.CompilerError
}

// Run executes both passes over table and returns the first fatal error, if
// any. sources maps each parsed file's path to its text, so a failure
// anywhere in a multi-file program's shared symbol tree still renders
// against the right file's source line; a failure with no specific file
// (such as checkStart's "no start function" check) renders with no source
// line at all.
func Run(table *symbols.Table, sources map[string]string) (err *errors.CompilerError) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				err = b.err
				return
			}
			panic(r)
		}
	}()

	v := &Validator{table: table, sources: sources}
	v.resolveTypes(table.Root)
	v.validate(table.Root)
	v.checkStart()
	return nil
}

func (v *Validator) fail(pos token.Position, format string, args ...any) {
	panic(bailout{errors.New(pos, v.sources[pos.File], format, args...)})
}

// resolveTypes is pass 1: it rewrites every Variable, Function,
// and FunctionPointer symbol's declared Type string to its canonical form,
// resolving external-qualified "Mod$Type" references and struct/enum names
// reachable via scoped lookup, while leaving array suffixes and primitives
// untouched.
func (v *Validator) resolveTypes(s *symbols.Symbol) {
	switch s.Kind {
	case symbols.Variable, symbols.FunctionPointer, symbols.Function:
		s.Type = v.resolveTypeString(s, s.Type)
	}
	for _, name := range s.Children.Keys() {
		child, _ := s.Children.Get(name)
		v.resolveTypes(child)
	}
}

// resolveTypeString resolves a single declared type string against scope.
// It is also called directly by the Cast expression check, since a
// cast's target type arrives as raw AST payload text rather than as a
// symbol's Type field and so is never touched by the pass-1 sweep above.
func (v *Validator) resolveTypeString(scope *symbols.Symbol, t string) string {
	if t == "" {
		return t
	}
	if symbols.IsUnresolvedQualified(t) {
		modName, memberName := symbols.SplitQualified(t)
		member := v.explicitLookup(scope, modName, memberName, scope.Pos)
		if member == nil {
			return t
		}
		return member.Type
	}

	base := t
	suffixes := 0
	for symbols.IsArray(base) {
		base = symbols.ElementType(base)
		suffixes++
	}
	if found, ok := symbols.ScopedLookup(scope, base); ok &&
		(found.Kind == symbols.StructKind || found.Kind == symbols.EnumKind) {
		base = found.CanonicalType()
	}
	for i := 0; i < suffixes; i++ {
		base = symbols.ArrayOf(base)
	}
	return base
}

// validate is pass 2's symbol-tree dispatch.
func (v *Validator) validate(s *symbols.Symbol) {
	switch s.Kind {
	case symbols.Program:
		for _, name := range s.Children.Keys() {
			c, _ := s.Children.Get(name)
			if c.Kind != symbols.Module {
				v.fail(c.Pos, "top-level symbol %q must be a module", c.Name)
			}
		}
		v.recurseChildren(s)

	case symbols.Module:
		for _, name := range s.Children.Keys() {
			c, _ := s.Children.Get(name)
			if c.Kind == symbols.Block {
				v.fail(c.Pos, "module %q cannot directly contain a block", s.Name)
			}
		}
		v.recurseChildren(s)

	case symbols.Variable, symbols.FunctionPointer:
		v.validateTypeString(s, s.Type)
		if s.Code != nil {
			initType := v.checkExpr(s.Code)
			if !v.typesMatch(s.Type, initType) {
				v.fail(s.Code.Pos, "cannot initialize %q of type %s with %s", s.Name, s.Type, initType)
			}
		}
		s.IsDeclared = true
		v.recurseChildren(s)

	case symbols.Function:
		v.validateTypeString(s, s.Type)
		v.recurseChildren(s)
		if s.Code != nil {
			v.checkStatement(s.Code)
		}

	case symbols.StructKind:
		v.recurseChildren(s)

	case symbols.EnumKind:
		// Variants carry a synthetic ordinal Code, not a user-checkable
		// initializer; they are simply always declared.
		for _, name := range s.Children.Keys() {
			c, _ := s.Children.Get(name)
			c.IsDeclared = true
		}

	case symbols.Block:
		// A no-op by design: block-scoped locals are validated exactly
		// once, in textual order, via the SymbolDefine AST path in
		// checkStatement. Revisiting them here through the symbol tree
		// would mark every local declared before its own statement runs
		// and defeat use-before-declare detection.
	}
}

func (v *Validator) recurseChildren(s *symbols.Symbol) {
	for _, name := range s.Children.Keys() {
		c, _ := s.Children.Get(name)
		v.validate(c)
	}
}

// validateTypeString requires t (after stripping array suffixes) to be a
// primitive, None, Any, or a registered struct/enum canonical type.
func (v *Validator) validateTypeString(scope *symbols.Symbol, t string) {
	base := t
	for symbols.IsArray(base) {
		base = symbols.ElementType(base)
	}
	if symbols.IsPrimitive(base) || base == symbols.Void || base == symbols.None || base == symbols.Any {
		return
	}
	if _, ok := v.table.LookupType(base); ok {
		return
	}
	v.fail(scope.Pos, "unknown type %q", t)
}

// typesMatch implements the assignment-compatibility rule: a
// primitive on either side requires exact equality; None is assignable to
// anything; Any accepts anything; arrays compare element types
// recursively; otherwise canonical type strings must match exactly.
func (v *Validator) typesMatch(expected, actual string) bool {
	if symbols.IsPrimitive(expected) || symbols.IsPrimitive(actual) {
		return expected == actual
	}
	if actual == symbols.None {
		return true
	}
	if expected == symbols.Any {
		return true
	}
	if symbols.IsArray(expected) {
		if !symbols.IsArray(actual) {
			return false
		}
		return v.typesMatch(symbols.ElementType(expected), symbols.ElementType(actual))
	}
	return expected == actual
}

func (v *Validator) isNumeric(t string) bool {
	return t == symbols.Int || t == symbols.Real || t == symbols.Byte
}

// checkStart enforces that exactly one module-level Function is named
// "start".
func (v *Validator) checkStart() {
	count := 0
	for _, modName := range v.table.Root.Children.Keys() {
		mod, _ := v.table.Root.Children.Get(modName)
		for _, name := range mod.Children.Keys() {
			c, _ := mod.Children.Get(name)
			if c.Kind == symbols.Function && c.Name == "start" {
				count++
			}
		}
	}
	if count != 1 {
		v.fail(token.Position{}, "program must declare exactly one function named %q, found %d", "start", count)
	}
}

func enclosingModule(s *symbols.Symbol) *symbols.Symbol {
	for c := s; c != nil; c = c.Parent {
		if c.Kind == symbols.Module {
			return c
		}
	}
	return nil
}

func enclosingFunction(s *symbols.Symbol) *symbols.Symbol {
	for c := s; c != nil; c = c.Parent {
		if c.Kind == symbols.Function || c.Kind == symbols.FunctionPointer {
			return c
		}
	}
	return nil
}

// nonBlockChildren returns sym's children in order, excluding its synthetic
// block(s); for a Function/FunctionPointer this is exactly its parameters.
func nonBlockChildren(sym *symbols.Symbol) []*symbols.Symbol {
	var out []*symbols.Symbol
	for _, name := range sym.Children.Keys() {
		if symbols.IsBlockChild(name) {
			continue
		}
		c, _ := sym.Children.Get(name)
		out = append(out, c)
	}
	return out
}
