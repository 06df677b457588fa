// Package generator implements the Orange-to-JavaScript backend: it
// assumes an already-validated symbol tree and walks it once,
// emitting enums, structs, globals, and functions as plain JS, identifying
// every user symbol solely by its "_<base36-id>" name.
package generator

import (
	"fmt"
	"strings"

	"github.com/orange-lang/orangec/internal/container"
	"github.com/orange-lang/orangec/internal/symbols"
)

const preamble = "// generated by orangec — do not edit\n"

type Generator struct {
	table *symbols.Table
}

func New(table *symbols.Table) *Generator {
	return &Generator{table: table}
}

// Generate produces the complete JS output for the whole program (which
// may span multiple parsed source files sharing one Table).
func (g *Generator) Generate() string {
	enums, structs, globals, functions, start := g.discover()

	var out strings.Builder
	out.WriteString(preamble)

	for _, e := range enums {
		out.WriteString(g.emitEnum(e))
		out.WriteByte('\n')
	}
	for _, s := range structs {
		out.WriteString(g.emitStruct(s))
		out.WriteByte('\n')
	}
	for _, v := range globals {
		out.WriteString(g.emitGlobal(v))
		out.WriteByte('\n')
	}
	for _, f := range functions {
		out.WriteString(g.emitFunction(f))
		out.WriteByte('\n')
	}
	if start != nil {
		fmt.Fprintf(&out, "%s();\n", start.EmittedName())
	}
	return out.String()
}

// discover walks Program -> Module -> children once, in insertion order,
// bucketing symbols into enums, structs, globals, and functions, and
// separately noting the program's single "start" function if one was
// declared. Each bucket is accumulated in a container.List discovery queue
// and flattened to a slice once the walk completes.
func (g *Generator) discover() (enums, structs, globals, functions []*symbols.Symbol, start *symbols.Symbol) {
	enumQueue := container.NewList[*symbols.Symbol]()
	structQueue := container.NewList[*symbols.Symbol]()
	globalQueue := container.NewList[*symbols.Symbol]()
	functionQueue := container.NewList[*symbols.Symbol]()

	for _, modName := range g.table.Root.Children.Keys() {
		mod, _ := g.table.Root.Children.Get(modName)
		for _, name := range mod.Children.Keys() {
			c, _ := mod.Children.Get(name)
			switch c.Kind {
			case symbols.EnumKind:
				enumQueue.PushBack(c)
			case symbols.StructKind:
				structQueue.PushBack(c)
			case symbols.Variable:
				globalQueue.PushBack(c)
			case symbols.Function:
				if c.Code != nil {
					functionQueue.PushBack(c)
				}
				if c.Name == "start" {
					start = c
				}
			}
		}
	}
	return enumQueue.ToSlice(), structQueue.ToSlice(), globalQueue.ToSlice(), functionQueue.ToSlice(), start
}

// emitEnum renders one enum as a single object literal mapping each
// variant's source name to its ordinal.
func (g *Generator) emitEnum(e *symbols.Symbol) string {
	var fields []string
	for _, name := range e.Children.Keys() {
		variant, _ := e.Children.Get(name)
		ordinal := 0
		if lit, ok := variant.Code.Payload.(int); ok {
			ordinal = lit
		}
		fields = append(fields, fmt.Sprintf("%s:%d", variant.Name, ordinal))
	}
	return fmt.Sprintf("%s={%s};", e.EmittedName(), strings.Join(fields, ","))
}

// emitStruct renders one struct as a class whose constructor assigns each
// field, keeping the field's source name as the resulting property name
//.
func (g *Generator) emitStruct(s *symbols.Symbol) string {
	var params, assigns []string
	for _, name := range s.Children.Keys() {
		field, _ := s.Children.Get(name)
		params = append(params, field.Name)
		assigns = append(assigns, fmt.Sprintf("this.%s=%s;", field.Name, field.Name))
	}
	return fmt.Sprintf("class %s { constructor(%s){%s} }", s.EmittedName(), strings.Join(params, ","), strings.Join(assigns, ""))
}

func (g *Generator) emitGlobal(v *symbols.Symbol) string {
	if v.Code == nil {
		return fmt.Sprintf("let %s;", v.EmittedName())
	}
	return fmt.Sprintf("let %s=%s;", v.EmittedName(), g.emitExpr(v.Code))
}

func (g *Generator) emitFunction(fn *symbols.Symbol) string {
	var params []string
	for _, name := range fn.Children.Keys() {
		if symbols.IsBlockChild(name) {
			continue
		}
		param, _ := fn.Children.Get(name)
		params = append(params, param.EmittedName())
	}
	return fmt.Sprintf("function %s(%s){%s}", fn.EmittedName(), strings.Join(params, ","), g.emitStatement(fn.Code))
}
