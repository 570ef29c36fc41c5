package ir

import (
	"reflect"

	"github.com/funvibe/irclone/internal/symbols"
)

// Inspect traverses the tree rooted at node in pre-order: fn sees a node
// before any of its children. If fn returns false the children are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Children returns the direct children of node in source order. Absent
// optional children are left out.
func Children(node Node) []Node {
	var out []Node
	addType := func(t *SimpleType) {
		if t != nil {
			out = append(out, t)
		}
	}
	addExpr := func(e Expression) {
		if e != nil {
			out = append(out, e)
		}
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Declarations {
			out = append(out, d)
		}
	case *ExternalPackageFragment:
		for _, d := range n.Declarations {
			out = append(out, d)
		}
	case *Class:
		for _, tp := range n.TypeParameters {
			out = append(out, tp)
		}
		for _, d := range n.Declarations {
			out = append(out, d)
		}
	case *EnumEntry:
		addExpr(n.Initializer)
	case *Field:
		addType(n.Type)
		addExpr(n.Initializer)
	case *Property:
		if n.BackingField != nil {
			out = append(out, n.BackingField)
		}
		if n.Getter != nil {
			out = append(out, n.Getter)
		}
	case *TypeAlias:
		for _, tp := range n.TypeParameters {
			out = append(out, tp)
		}
		addType(n.Expanded)
	case *Function:
		for _, tp := range n.TypeParameters {
			out = append(out, tp)
		}
		for _, vp := range n.ValueParameters {
			out = append(out, vp)
		}
		addType(n.ReturnType)
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *Constructor:
		for _, vp := range n.ValueParameters {
			out = append(out, vp)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *TypeParameter:
		for _, b := range n.Bounds {
			addType(b)
		}
	case *ValueParameter:
		addType(n.Type)
		addExpr(n.Default)
	case *Variable:
		addType(n.Type)
		addExpr(n.Initializer)
	case *Block:
		for _, s := range n.Statements {
			out = append(out, s)
		}
	case *ReturnableBlock:
		for _, s := range n.Statements {
			out = append(out, s)
		}
	case *SetValue:
		addExpr(n.Value)
	case *GetField:
		addExpr(n.Receiver)
	case *SetField:
		addExpr(n.Receiver)
		addExpr(n.Value)
	case *Call:
		for _, ta := range n.TypeArguments {
			addType(ta)
		}
		for _, a := range n.Arguments {
			addExpr(a)
		}
	case *Return:
		addExpr(n.Value)
	case *SimpleType:
		for _, a := range n.Arguments {
			addType(a)
		}
	}
	return out
}

// Declarations collects every declaration in the tree, root included, in
// pre-order.
func Declarations(root Node) []Declaration {
	var out []Declaration
	Inspect(root, func(n Node) bool {
		if d, ok := n.(Declaration); ok {
			out = append(out, d)
		}
		return true
	})
	return out
}

// References returns the symbols node refers to without owning them. A
// declaration's own symbol is not a reference. Absent references are left out.
func References(node Node) []symbols.Symbol {
	var out []symbols.Symbol
	add := func(s symbols.Symbol) {
		if !symbols.IsNil(s) {
			out = append(out, s)
		}
	}
	switch n := node.(type) {
	case *Class:
		add(n.SuperClass)
	case *GetValue:
		add(n.Symbol)
	case *SetValue:
		add(n.Symbol)
	case *GetField:
		add(n.Symbol)
	case *SetField:
		add(n.Symbol)
	case *GetEnumValue:
		add(n.Symbol)
	case *PropertyReference:
		add(n.Symbol)
	case *Call:
		add(n.Callee)
	case *Return:
		add(n.Target)
	case *ClassReference:
		add(n.Classifier)
	case *SimpleType:
		add(n.Classifier)
		add(n.Abbreviation)
	}
	return out
}

// IsNil reports whether n is nil or a nil node pointer such as (*File)(nil).
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
