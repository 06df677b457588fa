package symbols

import (
	"testing"

	"github.com/orange-lang/orangec/internal/token"
)

func TestTableAssignsMonotonicIDs(t *testing.T) {
	table := NewTable("t.orange")
	mod, _ := table.NewChild(table.Root, Module, "Main", token.Position{})
	v1, _ := table.NewChild(mod, Variable, "a", token.Position{})
	v2, _ := table.NewChild(mod, Variable, "b", token.Position{})

	if v2.ID != v1.ID+1 {
		t.Errorf("expected monotonic ids, got %d then %d", v1.ID, v2.ID)
	}
	if v1.EmittedName() == v2.EmittedName() {
		t.Errorf("expected distinct emitted names, got %q twice", v1.EmittedName())
	}
}

func TestChildrenPreserveInsertionOrder(t *testing.T) {
	table := NewTable("t.orange")
	mod, _ := table.NewChild(table.Root, Module, "Main", token.Position{})
	names := []string{"c", "a", "b"}
	for _, n := range names {
		table.NewChild(mod, Variable, n, token.Position{})
	}
	if got := mod.Children.Keys(); !equalStrings(got, names) {
		t.Errorf("got %v, want insertion order %v", got, names)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddChildReportsDuplicate(t *testing.T) {
	table := NewTable("t.orange")
	mod, _ := table.NewChild(table.Root, Module, "Main", token.Position{})
	_, existed1 := table.NewChild(mod, Variable, "x", token.Position{})
	_, existed2 := table.NewChild(mod, Variable, "x", token.Position{})
	if existed1 {
		t.Error("first insert should not report a collision")
	}
	if !existed2 {
		t.Error("second insert of the same name should report a collision")
	}
}

func TestCanonicalTypeAndTypeMap(t *testing.T) {
	table := NewTable("t.orange")
	mod, _ := table.NewChild(table.Root, Module, "Main", token.Position{})
	st, _ := table.NewChild(mod, StructKind, "Point", token.Position{})

	canon := st.CanonicalType()
	found, ok := table.LookupType(canon)
	if !ok || found != st {
		t.Errorf("LookupType(%q) did not resolve back to the struct symbol", canon)
	}
}

func TestScopedLookupWalksParentChain(t *testing.T) {
	table := NewTable("t.orange")
	mod, _ := table.NewChild(table.Root, Module, "Main", token.Position{})
	global, _ := table.NewChild(mod, Variable, "g", token.Position{})
	fn, _ := table.NewChild(mod, Function, "f", token.Position{})
	block, _ := table.NewChild(fn, Block, "_block1", token.Position{})

	found, ok := ScopedLookup(block, "g")
	if !ok || found != global {
		t.Errorf("expected ScopedLookup to find the module-level global from a nested block")
	}

	if _, ok := ScopedLookup(block, "nope"); ok {
		t.Error("expected ScopedLookup to report not-found for an unknown name")
	}
}

func TestIsArrayAndElementType(t *testing.T) {
	if !IsArray(ArrayOf(Int)) {
		t.Error("ArrayOf(int) should be an array type")
	}
	if ElementType(ArrayOf(Int)) != Int {
		t.Errorf("ElementType(ArrayOf(int)) = %q, want %q", ElementType(ArrayOf(Int)), Int)
	}
	if IsArray(Int) {
		t.Error("a bare primitive is not an array")
	}
}

func TestSplitQualified(t *testing.T) {
	if !IsUnresolvedQualified("Other$Point") {
		t.Fatal("expected Mod$Type to be unresolved-qualified")
	}
	mod, member := SplitQualified("Other$Point")
	if mod != "Other" || member != "Point" {
		t.Errorf("got (%q, %q), want (\"Other\", \"Point\")", mod, member)
	}
}
