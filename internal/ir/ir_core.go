// Package ir is a small intermediate representation: a tree of declarations,
// each owning exactly one symbol, and expressions that refer to symbols.
package ir

import "github.com/funvibe/irclone/internal/symbols"

// Node is the base interface for all IR nodes.
type Node interface {
	irNode()
}

// Declaration is a node that owns one symbol.
type Declaration interface {
	Node
	declarationNode()
	GetSymbol() symbols.Symbol
}

// Statement is anything that can appear in a block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a statement that produces a value.
type Expression interface {
	Statement
	expressionNode()
}

// File is the root of a compilation unit.
type File struct {
	Symbol       *symbols.FileSymbol
	Declarations []Declaration
}

func (f *File) irNode()                   {}
func (f *File) declarationNode()          {}
func (f *File) GetSymbol() symbols.Symbol { return f.Symbol }

// ExternalPackageFragment groups declarations that come from a library.
type ExternalPackageFragment struct {
	Symbol       *symbols.ExternalPackageFragmentSymbol
	Declarations []Declaration
}

func (e *ExternalPackageFragment) irNode()                   {}
func (e *ExternalPackageFragment) declarationNode()          {}
func (e *ExternalPackageFragment) GetSymbol() symbols.Symbol { return e.Symbol }

type Class struct {
	Symbol         *symbols.ClassSymbol
	TypeParameters []*TypeParameter
	SuperClass     *symbols.ClassSymbol // nil when the class has no explicit super class
	Declarations   []Declaration
}

func (c *Class) irNode()                   {}
func (c *Class) declarationNode()          {}
func (c *Class) GetSymbol() symbols.Symbol { return c.Symbol }

type EnumEntry struct {
	Symbol      *symbols.EnumEntrySymbol
	Initializer Expression
}

func (e *EnumEntry) irNode()                   {}
func (e *EnumEntry) declarationNode()          {}
func (e *EnumEntry) GetSymbol() symbols.Symbol { return e.Symbol }

type Field struct {
	Symbol      *symbols.FieldSymbol
	Type        *SimpleType
	Initializer Expression
}

func (f *Field) irNode()                   {}
func (f *Field) declarationNode()          {}
func (f *Field) GetSymbol() symbols.Symbol { return f.Symbol }

// Property is an accessor-bearing member, optionally backed by a field.
type Property struct {
	Symbol       *symbols.PropertySymbol
	BackingField *Field
	Getter       *Function
}

func (p *Property) irNode()                   {}
func (p *Property) declarationNode()          {}
func (p *Property) GetSymbol() symbols.Symbol { return p.Symbol }

type TypeAlias struct {
	Symbol         *symbols.TypeAliasSymbol
	TypeParameters []*TypeParameter
	Expanded       *SimpleType
}

func (t *TypeAlias) irNode()                   {}
func (t *TypeAlias) declarationNode()          {}
func (t *TypeAlias) GetSymbol() symbols.Symbol { return t.Symbol }

type Function struct {
	Symbol          *symbols.FunctionSymbol
	TypeParameters  []*TypeParameter
	ValueParameters []*ValueParameter
	ReturnType      *SimpleType
	Body            *Block
}

func (f *Function) irNode()                   {}
func (f *Function) declarationNode()          {}
func (f *Function) GetSymbol() symbols.Symbol { return f.Symbol }

type Constructor struct {
	Symbol          *symbols.ConstructorSymbol
	ValueParameters []*ValueParameter
	Body            *Block
}

func (c *Constructor) irNode()                   {}
func (c *Constructor) declarationNode()          {}
func (c *Constructor) GetSymbol() symbols.Symbol { return c.Symbol }

type TypeParameter struct {
	Symbol *symbols.TypeParameterSymbol
	Bounds []*SimpleType
}

func (t *TypeParameter) irNode()                   {}
func (t *TypeParameter) declarationNode()          {}
func (t *TypeParameter) GetSymbol() symbols.Symbol { return t.Symbol }

type ValueParameter struct {
	Symbol  *symbols.ValueParameterSymbol
	Type    *SimpleType
	Default Expression
}

func (v *ValueParameter) irNode()                   {}
func (v *ValueParameter) declarationNode()          {}
func (v *ValueParameter) GetSymbol() symbols.Symbol { return v.Symbol }

// Variable is a local declaration; it may appear directly in a block.
type Variable struct {
	Symbol      *symbols.VariableSymbol
	Type        *SimpleType
	Initializer Expression
}

func (v *Variable) irNode()                   {}
func (v *Variable) declarationNode()          {}
func (v *Variable) statementNode()            {}
func (v *Variable) GetSymbol() symbols.Symbol { return v.Symbol }
