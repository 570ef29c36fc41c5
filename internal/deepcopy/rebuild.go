package deepcopy

import (
	"fmt"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/pipeline"
	"github.com/funvibe/irclone/internal/remap"
	"github.com/funvibe/irclone/internal/symbols"
)

// rebuilder produces the copied tree. A declaration's own symbol is looked up
// with the declared policy; every other symbol occurrence is a reference and
// uses the referenced policy.
type rebuilder struct {
	r *remap.SymbolRemapper
}

// Rebuild copies root using the mappings recorded in r. All declarations in
// root must have been declared in r first.
func Rebuild(root ir.Node, r *remap.SymbolRemapper) (ir.Node, error) {
	b := &rebuilder{r: r}
	switch n := root.(type) {
	case ir.Declaration:
		return b.declaration(n)
	case ir.Expression:
		return b.expression(n)
	case *ir.SimpleType:
		return b.typ(n)
	default:
		return nil, fmt.Errorf("deep copy: unsupported root %T", root)
	}
}

// RebuildProcessor is the second pipeline stage of a deep copy.
type RebuildProcessor struct{}

func (p *RebuildProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	result, err := Rebuild(ctx.Root, ctx.Remapper)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = result
	return ctx
}

func within(d ir.Declaration, err error) error {
	return fmt.Errorf("in %s: %w", symbols.Describe(d.GetSymbol()), err)
}

func mapSlice[T, U any](in []T, fn func(T) (U, error)) ([]U, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]U, len(in))
	for i, x := range in {
		y, err := fn(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

func (b *rebuilder) declaration(d ir.Declaration) (ir.Declaration, error) {
	switch n := d.(type) {
	case *ir.File:
		return b.file(n)
	case *ir.ExternalPackageFragment:
		return b.externalPackageFragment(n)
	case *ir.Class:
		return b.class(n)
	case *ir.EnumEntry:
		return b.enumEntry(n)
	case *ir.Field:
		return b.field(n)
	case *ir.Property:
		return b.property(n)
	case *ir.TypeAlias:
		return b.typeAlias(n)
	case *ir.Function:
		return b.function(n)
	case *ir.Constructor:
		return b.constructor(n)
	case *ir.TypeParameter:
		return b.typeParameter(n)
	case *ir.ValueParameter:
		return b.valueParameter(n)
	case *ir.Variable:
		return b.variable(n)
	case *ir.ReturnableBlock:
		return b.returnableBlock(n)
	default:
		return nil, fmt.Errorf("deep copy: unsupported declaration %T", d)
	}
}

func (b *rebuilder) file(n *ir.File) (*ir.File, error) {
	sym, err := b.r.Files.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	decls, err := mapSlice(n.Declarations, b.declaration)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.File{Symbol: sym, Declarations: decls}, nil
}

func (b *rebuilder) externalPackageFragment(n *ir.ExternalPackageFragment) (*ir.ExternalPackageFragment, error) {
	sym, err := b.r.ExternalPackageFragments.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	decls, err := mapSlice(n.Declarations, b.declaration)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.ExternalPackageFragment{Symbol: sym, Declarations: decls}, nil
}

func (b *rebuilder) class(n *ir.Class) (*ir.Class, error) {
	sym, err := b.r.Classes.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	tps, err := mapSlice(n.TypeParameters, b.typeParameter)
	if err != nil {
		return nil, within(n, err)
	}
	decls, err := mapSlice(n.Declarations, b.declaration)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Class{
		Symbol:         sym,
		TypeParameters: tps,
		SuperClass:     b.r.ResolveOptionalClass(n.SuperClass),
		Declarations:   decls,
	}, nil
}

func (b *rebuilder) enumEntry(n *ir.EnumEntry) (*ir.EnumEntry, error) {
	sym, err := b.r.EnumEntries.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	init, err := b.expression(n.Initializer)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.EnumEntry{Symbol: sym, Initializer: init}, nil
}

func (b *rebuilder) field(n *ir.Field) (*ir.Field, error) {
	if n == nil {
		return nil, nil
	}
	sym, err := b.r.Fields.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	typ, err := b.typ(n.Type)
	if err != nil {
		return nil, within(n, err)
	}
	init, err := b.expression(n.Initializer)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Field{Symbol: sym, Type: typ, Initializer: init}, nil
}

func (b *rebuilder) property(n *ir.Property) (*ir.Property, error) {
	sym, err := b.r.Properties.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	backing, err := b.field(n.BackingField)
	if err != nil {
		return nil, within(n, err)
	}
	getter, err := b.function(n.Getter)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Property{Symbol: sym, BackingField: backing, Getter: getter}, nil
}

func (b *rebuilder) typeAlias(n *ir.TypeAlias) (*ir.TypeAlias, error) {
	sym, err := b.r.TypeAliases.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	tps, err := mapSlice(n.TypeParameters, b.typeParameter)
	if err != nil {
		return nil, within(n, err)
	}
	expanded, err := b.typ(n.Expanded)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.TypeAlias{Symbol: sym, TypeParameters: tps, Expanded: expanded}, nil
}

func (b *rebuilder) function(n *ir.Function) (*ir.Function, error) {
	if n == nil {
		return nil, nil
	}
	sym, err := b.r.Functions.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	tps, err := mapSlice(n.TypeParameters, b.typeParameter)
	if err != nil {
		return nil, within(n, err)
	}
	vps, err := mapSlice(n.ValueParameters, b.valueParameter)
	if err != nil {
		return nil, within(n, err)
	}
	ret, err := b.typ(n.ReturnType)
	if err != nil {
		return nil, within(n, err)
	}
	body, err := b.block(n.Body)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Function{
		Symbol:          sym,
		TypeParameters:  tps,
		ValueParameters: vps,
		ReturnType:      ret,
		Body:            body,
	}, nil
}

func (b *rebuilder) constructor(n *ir.Constructor) (*ir.Constructor, error) {
	sym, err := b.r.Constructors.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	vps, err := mapSlice(n.ValueParameters, b.valueParameter)
	if err != nil {
		return nil, within(n, err)
	}
	body, err := b.block(n.Body)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Constructor{Symbol: sym, ValueParameters: vps, Body: body}, nil
}

func (b *rebuilder) typeParameter(n *ir.TypeParameter) (*ir.TypeParameter, error) {
	sym, err := b.r.TypeParameters.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	bounds, err := mapSlice(n.Bounds, b.typ)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.TypeParameter{Symbol: sym, Bounds: bounds}, nil
}

func (b *rebuilder) valueParameter(n *ir.ValueParameter) (*ir.ValueParameter, error) {
	sym, err := b.r.ValueParameters.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	typ, err := b.typ(n.Type)
	if err != nil {
		return nil, within(n, err)
	}
	def, err := b.expression(n.Default)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.ValueParameter{Symbol: sym, Type: typ, Default: def}, nil
}

func (b *rebuilder) variable(n *ir.Variable) (*ir.Variable, error) {
	sym, err := b.r.Variables.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	typ, err := b.typ(n.Type)
	if err != nil {
		return nil, within(n, err)
	}
	init, err := b.expression(n.Initializer)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.Variable{Symbol: sym, Type: typ, Initializer: init}, nil
}

func (b *rebuilder) returnableBlock(n *ir.ReturnableBlock) (*ir.ReturnableBlock, error) {
	sym, err := b.r.ReturnableBlocks.GetDeclared(n.Symbol)
	if err != nil {
		return nil, err
	}
	stmts, err := mapSlice(n.Statements, b.statement)
	if err != nil {
		return nil, within(n, err)
	}
	return &ir.ReturnableBlock{Symbol: sym, Statements: stmts}, nil
}

func (b *rebuilder) block(n *ir.Block) (*ir.Block, error) {
	if n == nil {
		return nil, nil
	}
	stmts, err := mapSlice(n.Statements, b.statement)
	if err != nil {
		return nil, err
	}
	return &ir.Block{Statements: stmts}, nil
}

func (b *rebuilder) statement(s ir.Statement) (ir.Statement, error) {
	switch n := s.(type) {
	case *ir.Variable:
		return b.variable(n)
	case ir.Expression:
		return b.expression(n)
	default:
		return nil, fmt.Errorf("deep copy: unsupported statement %T", s)
	}
}

func (b *rebuilder) expression(e ir.Expression) (ir.Expression, error) {
	switch n := e.(type) {
	case nil:
		return nil, nil
	case *ir.Block:
		return b.block(n)
	case *ir.ReturnableBlock:
		return b.returnableBlock(n)
	case *ir.Const:
		return &ir.Const{Value: n.Value}, nil
	case *ir.GetValue:
		sym, err := b.r.GetReferencedValue(n.Symbol)
		if err != nil {
			return nil, err
		}
		return &ir.GetValue{Symbol: sym}, nil
	case *ir.SetValue:
		sym, err := b.r.GetReferencedValue(n.Symbol)
		if err != nil {
			return nil, err
		}
		value, err := b.expression(n.Value)
		if err != nil {
			return nil, err
		}
		return &ir.SetValue{Symbol: sym, Value: value}, nil
	case *ir.GetField:
		receiver, err := b.expression(n.Receiver)
		if err != nil {
			return nil, err
		}
		return &ir.GetField{Symbol: b.r.Fields.GetReferenced(n.Symbol), Receiver: receiver}, nil
	case *ir.SetField:
		receiver, err := b.expression(n.Receiver)
		if err != nil {
			return nil, err
		}
		value, err := b.expression(n.Value)
		if err != nil {
			return nil, err
		}
		return &ir.SetField{Symbol: b.r.Fields.GetReferenced(n.Symbol), Receiver: receiver, Value: value}, nil
	case *ir.GetEnumValue:
		return &ir.GetEnumValue{Symbol: b.r.EnumEntries.GetReferenced(n.Symbol)}, nil
	case *ir.PropertyReference:
		return &ir.PropertyReference{Symbol: b.r.Properties.GetReferenced(n.Symbol)}, nil
	case *ir.Call:
		callee, err := b.r.GetReferencedFunction(n.Callee)
		if err != nil {
			return nil, err
		}
		typeArgs, err := mapSlice(n.TypeArguments, b.typ)
		if err != nil {
			return nil, err
		}
		args, err := mapSlice(n.Arguments, b.expression)
		if err != nil {
			return nil, err
		}
		return &ir.Call{Callee: callee, TypeArguments: typeArgs, Arguments: args}, nil
	case *ir.Return:
		target, err := b.r.GetReferencedReturnTarget(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := b.expression(n.Value)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Target: target, Value: value}, nil
	case *ir.ClassReference:
		classifier, err := b.r.GetReferencedClassifier(n.Classifier)
		if err != nil {
			return nil, err
		}
		return &ir.ClassReference{Classifier: classifier}, nil
	default:
		return nil, fmt.Errorf("deep copy: unsupported expression %T", e)
	}
}

func (b *rebuilder) typ(t *ir.SimpleType) (*ir.SimpleType, error) {
	if t == nil {
		return nil, nil
	}
	classifier, err := b.r.GetReferencedClassifier(t.Classifier)
	if err != nil {
		return nil, err
	}
	args, err := mapSlice(t.Arguments, b.typ)
	if err != nil {
		return nil, err
	}
	var abbreviation *symbols.TypeAliasSymbol
	if t.Abbreviation != nil {
		abbreviation = b.r.TypeAliases.GetReferenced(t.Abbreviation)
	}
	return &ir.SimpleType{
		Classifier:   classifier,
		Arguments:    args,
		Nullable:     t.Nullable,
		Abbreviation: abbreviation,
	}, nil
}
