package parser

import (
	"testing"

	"github.com/orange-lang/orangec/internal/ast"
	"github.com/orange-lang/orangec/internal/symbols"
)

func mustParse(t *testing.T, src string) *symbols.Table {
	t.Helper()
	table := symbols.NewTable("t.orange")
	if err := Parse(table, src, "t.orange"); err != nil {
		t.Fatalf("unexpected parse error: %s", err.Format())
	}
	return table
}

func TestParseModuleWithGlobalsAndFunction(t *testing.T) {
	table := mustParse(t, `Main {
		int x = 1;
		int start() {
			return x;
		}
	}`)

	mod, ok := table.Root.Lookup("Main")
	if !ok {
		t.Fatal("expected a Main module")
	}
	x, ok := mod.Lookup("x")
	if !ok || x.Kind != symbols.Variable || x.Type != symbols.Int {
		t.Fatalf("expected int variable x, got %+v", x)
	}
	fn, ok := mod.Lookup("start")
	if !ok || fn.Kind != symbols.Function {
		t.Fatalf("expected function start, got %+v", fn)
	}
	if fn.Code == nil || fn.Code.Kind != ast.Block {
		t.Fatalf("expected start's Code to be a Block, got %+v", fn.Code)
	}
}

func TestParseStruct(t *testing.T) {
	table := mustParse(t, `Main {
		struct Point(int x, int y);
	}`)
	mod, _ := table.Root.Lookup("Main")
	st, ok := mod.Lookup("Point")
	if !ok || st.Kind != symbols.StructKind {
		t.Fatalf("expected struct Point, got %+v", st)
	}
	if st.Children.Size() != 2 {
		t.Fatalf("expected 2 fields, got %d", st.Children.Size())
	}
}

func TestParseEnumOrdinals(t *testing.T) {
	table := mustParse(t, `Main {
		enum Color(Red, Green, Blue);
	}`)
	mod, _ := table.Root.Lookup("Main")
	en, _ := mod.Lookup("Color")

	wantOrdinal := map[string]int{"Red": 0, "Green": 1, "Blue": 2}
	for name, want := range wantOrdinal {
		variant, ok := en.Lookup(name)
		if !ok {
			t.Fatalf("missing variant %q", name)
		}
		got, _ := variant.Code.Payload.(int)
		if got != want {
			t.Errorf("variant %q: got ordinal %d, want %d", name, got, want)
		}
	}
}

func TestParseFunctionPointer(t *testing.T) {
	table := mustParse(t, `Main {
		int callback(int a);
	}`)
	mod, _ := table.Root.Lookup("Main")
	fn, ok := mod.Lookup("callback")
	if !ok || fn.Kind != symbols.FunctionPointer {
		t.Fatalf("expected a function pointer, got %+v", fn)
	}
}

func TestParseExpressionShapeRespectsPrecedence(t *testing.T) {
	table := mustParse(t, `Main {
		int start() {
			return 1 + 2 * 3;
		}
	}`)
	mod, _ := table.Root.Lookup("Main")
	fn, _ := mod.Lookup("start")
	ret := fn.Code.Children[0]
	if ret.Kind != ast.Return {
		t.Fatalf("expected Return, got %v", ret.Kind)
	}
	add := ret.Children[0]
	if add.Kind != ast.Add {
		t.Fatalf("expected the outermost node to be Add (lowest precedence wins last), got %v", add.Kind)
	}
	// Per the operand-order convention, child[0] is the right operand.
	mul := add.Children[0]
	if mul.Kind != ast.Mul {
		t.Fatalf("expected the right operand of + to be the * term, got %v", mul.Kind)
	}
}

func TestParseDuplicateModuleFails(t *testing.T) {
	table := symbols.NewTable("t.orange")
	if err := Parse(table, "Main { }", "t.orange"); err != nil {
		t.Fatalf("unexpected error on first module: %s", err.Format())
	}
	if err := Parse(table, "Main { }", "t.orange"); err == nil {
		t.Fatal("expected a duplicate-module error")
	}
}

func TestParseDuplicateParameterFails(t *testing.T) {
	table := symbols.NewTable("t.orange")
	err := Parse(table, `Main { int f(int a, int a) { return 0; } }`, "t.orange")
	if err == nil {
		t.Fatal("expected a duplicate-parameter error")
	}
}
