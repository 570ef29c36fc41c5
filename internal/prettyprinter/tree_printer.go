package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

// --- Tree Printer (one node per line, symbols shown with short ids) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int

	// Symbol styles every symbol reference; nil leaves them plain.
	Symbol func(string) string
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders node and returns the printer's accumulated output.
func Print(node ir.Node) string {
	p := NewTreePrinter()
	p.Print(node)
	return p.String()
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func (p *TreePrinter) sym(s symbols.Symbol) string {
	if symbols.IsNil(s) {
		return "<nil>"
	}
	text := s.Name() + "#" + symbols.ShortID(s)
	if p.Symbol != nil {
		return p.Symbol(text)
	}
	return text
}

// typeString renders List<T>?; a type written through an alias shows the
// alias after the expansion.
func (p *TreePrinter) typeString(t *ir.SimpleType) string {
	if t == nil {
		return "<none>"
	}
	var sb strings.Builder
	sb.WriteString(p.sym(t.Classifier))
	if len(t.Arguments) > 0 {
		args := make([]string, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = p.typeString(a)
		}
		sb.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	if t.Abbreviation != nil {
		sb.WriteString(" via " + p.sym(t.Abbreviation))
	}
	return sb.String()
}

func (p *TreePrinter) Print(node ir.Node) {
	switch n := node.(type) {
	case nil:
		p.line("<nil>")
	case *ir.File:
		p.line("file %s", p.sym(n.Symbol))
		p.nested(func() { p.declarations(n.Declarations) })
	case *ir.ExternalPackageFragment:
		p.line("package %s", p.sym(n.Symbol))
		p.nested(func() { p.declarations(n.Declarations) })
	case *ir.Class:
		if n.SuperClass != nil {
			p.line("class %s : %s", p.sym(n.Symbol), p.sym(n.SuperClass))
		} else {
			p.line("class %s", p.sym(n.Symbol))
		}
		p.nested(func() {
			for _, tp := range n.TypeParameters {
				p.Print(tp)
			}
			p.declarations(n.Declarations)
		})
	case *ir.TypeParameter:
		p.line("type-parameter %s", p.sym(n.Symbol))
		p.nested(func() {
			for _, b := range n.Bounds {
				p.line("bound %s", p.typeString(b))
			}
		})
	case *ir.ValueParameter:
		p.line("parameter %s: %s", p.sym(n.Symbol), p.typeString(n.Type))
		if n.Default != nil {
			p.nested(func() { p.child("default", n.Default) })
		}
	case *ir.TypeAlias:
		p.line("typealias %s = %s", p.sym(n.Symbol), p.typeString(n.Expanded))
		p.nested(func() {
			for _, tp := range n.TypeParameters {
				p.Print(tp)
			}
		})
	case *ir.Function:
		p.line("function %s: %s", p.sym(n.Symbol), p.typeString(n.ReturnType))
		p.nested(func() {
			for _, tp := range n.TypeParameters {
				p.Print(tp)
			}
			for _, vp := range n.ValueParameters {
				p.Print(vp)
			}
			if n.Body != nil {
				p.Print(n.Body)
			}
		})
	case *ir.Constructor:
		p.line("constructor %s", p.sym(n.Symbol))
		p.nested(func() {
			for _, vp := range n.ValueParameters {
				p.Print(vp)
			}
			if n.Body != nil {
				p.Print(n.Body)
			}
		})
	case *ir.Field:
		p.line("field %s: %s", p.sym(n.Symbol), p.typeString(n.Type))
		if n.Initializer != nil {
			p.nested(func() { p.child("init", n.Initializer) })
		}
	case *ir.Property:
		p.line("property %s", p.sym(n.Symbol))
		p.nested(func() {
			if n.BackingField != nil {
				p.Print(n.BackingField)
			}
			if n.Getter != nil {
				p.Print(n.Getter)
			}
		})
	case *ir.EnumEntry:
		p.line("entry %s", p.sym(n.Symbol))
		if n.Initializer != nil {
			p.nested(func() { p.child("init", n.Initializer) })
		}
	case *ir.Variable:
		p.line("var %s: %s", p.sym(n.Symbol), p.typeString(n.Type))
		if n.Initializer != nil {
			p.nested(func() { p.child("init", n.Initializer) })
		}
	case *ir.SimpleType:
		p.line("type %s", p.typeString(n))
	default:
		p.expression(node)
	}
}

func (p *TreePrinter) declarations(decls []ir.Declaration) {
	for _, d := range decls {
		p.Print(d)
	}
}

// child prints a labelled sub-expression.
func (p *TreePrinter) child(label string, e ir.Node) {
	p.line("%s:", label)
	p.nested(func() { p.Print(e) })
}

func (p *TreePrinter) statements(stmts []ir.Statement) {
	for _, s := range stmts {
		p.Print(s)
	}
}

func (p *TreePrinter) expression(node ir.Node) {
	switch n := node.(type) {
	case *ir.Block:
		p.line("block")
		p.nested(func() { p.statements(n.Statements) })
	case *ir.ReturnableBlock:
		p.line("inline %s", p.sym(n.Symbol))
		p.nested(func() { p.statements(n.Statements) })
	case *ir.Const:
		p.line("const %v", n.Value)
	case *ir.GetValue:
		p.line("get %s", p.sym(n.Symbol))
	case *ir.SetValue:
		p.line("set %s", p.sym(n.Symbol))
		if n.Value != nil {
			p.nested(func() { p.Print(n.Value) })
		}
	case *ir.GetField:
		p.line("get-field %s", p.sym(n.Symbol))
		if n.Receiver != nil {
			p.nested(func() { p.child("receiver", n.Receiver) })
		}
	case *ir.SetField:
		p.line("set-field %s", p.sym(n.Symbol))
		p.nested(func() {
			if n.Receiver != nil {
				p.child("receiver", n.Receiver)
			}
			if n.Value != nil {
				p.child("value", n.Value)
			}
		})
	case *ir.GetEnumValue:
		p.line("enum %s", p.sym(n.Symbol))
	case *ir.PropertyReference:
		p.line("property-ref %s", p.sym(n.Symbol))
	case *ir.Call:
		if len(n.TypeArguments) > 0 {
			args := make([]string, len(n.TypeArguments))
			for i, t := range n.TypeArguments {
				args[i] = p.typeString(t)
			}
			p.line("call %s<%s>", p.sym(n.Callee), strings.Join(args, ", "))
		} else {
			p.line("call %s", p.sym(n.Callee))
		}
		p.nested(func() {
			for _, a := range n.Arguments {
				p.Print(a)
			}
		})
	case *ir.Return:
		p.line("return@%s", p.sym(n.Target))
		if n.Value != nil {
			p.nested(func() { p.Print(n.Value) })
		}
	case *ir.ClassReference:
		p.line("class-ref %s", p.sym(n.Classifier))
	default:
		p.line("<unknown %T>", node)
	}
}
