package ir

import "github.com/funvibe/irclone/internal/symbols"

// Block is a plain statement list.
type Block struct {
	Statements []Statement
}

func (b *Block) irNode()         {}
func (b *Block) statementNode()  {}
func (b *Block) expressionNode() {}

// ReturnableBlock is a block that Return can target, e.g. an inlined body.
type ReturnableBlock struct {
	Symbol     *symbols.ReturnableBlockSymbol
	Statements []Statement
}

func (b *ReturnableBlock) irNode()                   {}
func (b *ReturnableBlock) declarationNode()          {}
func (b *ReturnableBlock) statementNode()            {}
func (b *ReturnableBlock) expressionNode()           {}
func (b *ReturnableBlock) GetSymbol() symbols.Symbol { return b.Symbol }

type Const struct {
	Value any
}

func (c *Const) irNode()         {}
func (c *Const) statementNode()  {}
func (c *Const) expressionNode() {}

type GetValue struct {
	Symbol symbols.ValueSymbol
}

func (g *GetValue) irNode()         {}
func (g *GetValue) statementNode()  {}
func (g *GetValue) expressionNode() {}

type SetValue struct {
	Symbol symbols.ValueSymbol
	Value  Expression
}

func (s *SetValue) irNode()         {}
func (s *SetValue) statementNode()  {}
func (s *SetValue) expressionNode() {}

// GetField reads a field; Receiver is nil for static fields.
type GetField struct {
	Symbol   *symbols.FieldSymbol
	Receiver Expression
}

func (g *GetField) irNode()         {}
func (g *GetField) statementNode()  {}
func (g *GetField) expressionNode() {}

type SetField struct {
	Symbol   *symbols.FieldSymbol
	Receiver Expression
	Value    Expression
}

func (s *SetField) irNode()         {}
func (s *SetField) statementNode()  {}
func (s *SetField) expressionNode() {}

type GetEnumValue struct {
	Symbol *symbols.EnumEntrySymbol
}

func (g *GetEnumValue) irNode()         {}
func (g *GetEnumValue) statementNode()  {}
func (g *GetEnumValue) expressionNode() {}

type PropertyReference struct {
	Symbol *symbols.PropertySymbol
}

func (p *PropertyReference) irNode()         {}
func (p *PropertyReference) statementNode()  {}
func (p *PropertyReference) expressionNode() {}

// Call invokes a function or a constructor.
type Call struct {
	Callee        symbols.FunctionLikeSymbol
	TypeArguments []*SimpleType
	Arguments     []Expression
}

func (c *Call) irNode()         {}
func (c *Call) statementNode()  {}
func (c *Call) expressionNode() {}

type Return struct {
	Target symbols.ReturnTargetSymbol
	Value  Expression
}

func (r *Return) irNode()         {}
func (r *Return) statementNode()  {}
func (r *Return) expressionNode() {}

// ClassReference is a class literal, e.g. Foo::class or T::class.
type ClassReference struct {
	Classifier symbols.ClassifierSymbol
}

func (c *ClassReference) irNode()         {}
func (c *ClassReference) statementNode()  {}
func (c *ClassReference) expressionNode() {}
