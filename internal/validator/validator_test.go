package validator

import (
	"testing"

	"github.com/orange-lang/orangec/internal/parser"
	"github.com/orange-lang/orangec/internal/symbols"
)

func compile(t *testing.T, src string) error {
	t.Helper()
	table := symbols.NewTable("t.orange")
	if perr := parser.Parse(table, src, "t.orange"); perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Format())
	}
	if verr := Run(table, map[string]string{"t.orange": src}); verr != nil {
		return verr
	}
	return nil
}

func TestValidProgramPasses(t *testing.T) {
	src := `Main {
		int start() {
			int x = 1;
			return x;
		}
	}`
	if err := compile(t, src); err != nil {
		t.Fatalf("unexpected validation error: %s", err)
	}
}

func TestMissingStartFails(t *testing.T) {
	src := `Main {
		int f() { return 1; }
	}`
	if err := compile(t, src); err == nil {
		t.Fatal("expected an error for a program with no start function")
	}
}

func TestUseBeforeDeclareFails(t *testing.T) {
	src := `Main {
		int start() {
			int y = x;
			int x = 1;
			return y;
		}
	}`
	if err := compile(t, src); err == nil {
		t.Fatal("expected a use-before-declare error")
	}
}

func TestInitializerTypeMismatchFails(t *testing.T) {
	src := `Main {
		int start() {
			boolean b = 1;
			return 0;
		}
	}`
	if err := compile(t, src); err == nil {
		t.Fatal("expected a type-mismatch error on the initializer")
	}
}

func TestArithmeticOnNonNumericFails(t *testing.T) {
	src := `Main {
		int start() {
			boolean b = true;
			int x = b + 1;
			return x;
		}
	}`
	if err := compile(t, src); err == nil {
		t.Fatal("expected an error for non-numeric arithmetic operands")
	}
}

func TestStaticModuleCannotCallStaticFunctionFromNonStaticCaller(t *testing.T) {
	src := `Main {
		static int helper() { return 1; }
		int start() {
			return helper();
		}
	}`
	// Main itself is not declared static, so calling its own static member
	// is rejected by the Glossary's static-module rule.
	if err := compile(t, src); err == nil {
		t.Fatal("expected a static-access error")
	}
}

func TestStructFieldAccess(t *testing.T) {
	src := `Main {
		struct Point(int x, int y);
		int start() {
			Point p = new Point(1, 2);
			return p.x;
		}
	}`
	if err := compile(t, src); err != nil {
		t.Fatalf("unexpected validation error: %s", err)
	}
}

func TestUnknownFieldFails(t *testing.T) {
	src := `Main {
		struct Point(int x, int y);
		int start() {
			Point p = new Point(1, 2);
			return p.z;
		}
	}`
	if err := compile(t, src); err == nil {
		t.Fatal("expected an unknown-field error")
	}
}

func TestArraySizeAllocationWithIntSizePasses(t *testing.T) {
	src := `Main {
		int start() {
			int[] a = new int[3];
			return a.length;
		}
	}`
	if err := compile(t, src); err != nil {
		t.Fatalf("unexpected validation error: %s", err)
	}
}

func TestEnumDeclarationAndStructFieldOfEnumType(t *testing.T) {
	src := `Main {
		enum Color(Red, Green, Blue);
		struct Pixel(Color c, int value);
		int start() {
			return 0;
		}
	}`
	if err := compile(t, src); err != nil {
		t.Fatalf("unexpected validation error: %s", err)
	}
}
