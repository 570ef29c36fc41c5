package irfile

import (
	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

// body builds a function body. A missing body stays nil.
func (b *builder) body(sc *scope, docs []exprDoc) (*ir.Block, error) {
	if docs == nil {
		return nil, nil
	}
	stmts, err := b.statements(sc, docs)
	if err != nil {
		return nil, err
	}
	return &ir.Block{Statements: stmts}, nil
}

// statements builds docs in order. A variable is visible to the statements
// that follow it, not to its own initializer.
func (b *builder) statements(sc *scope, docs []exprDoc) ([]ir.Statement, error) {
	out := make([]ir.Statement, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		if d.kind() != "var" {
			e, err := b.expression(sc, d)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
			continue
		}
		typ, err := b.typ(sc, d.Type, d.line)
		if err != nil {
			return nil, err
		}
		init, err := b.expression(sc, d.Init)
		if err != nil {
			return nil, err
		}
		sym := symbols.NewVariableSymbol(d.Var, nil)
		sc.values[d.Var] = sym
		out = append(out, &ir.Variable{Symbol: sym, Type: typ, Initializer: init})
	}
	return out, nil
}

func (b *builder) expression(sc *scope, e *exprDoc) (ir.Expression, error) {
	if e == nil {
		return nil, nil
	}
	switch e.kind() {
	case "var":
		return nil, b.errorf(e.line, "variable %s declared where an expression is expected", e.Var)

	case "inline":
		sym := symbols.NewReturnableBlockSymbol(e.Inline, nil)
		stmts, err := b.statements(targetScope(sc, e.Inline, sym), e.Body)
		if err != nil {
			return nil, err
		}
		return &ir.ReturnableBlock{Symbol: sym, Statements: stmts}, nil

	case "block":
		stmts, err := b.statements(newScope(sc), e.Block)
		if err != nil {
			return nil, err
		}
		return &ir.Block{Statements: stmts}, nil

	case "return":
		var target symbols.ReturnTargetSymbol
		if e.From != "" {
			t, ok := lookup(sc, labelsOf, e.From)
			if !ok {
				return nil, b.errorf(e.line, "return@%s has no enclosing target of that name", e.From)
			}
			target = t
		} else {
			target = sc.innermostTarget()
		}
		if target == nil {
			return nil, b.errorf(e.line, "return outside of a function or inline block")
		}
		value, err := b.expression(sc, e.Return)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Target: target, Value: value}, nil

	case "set":
		value, err := b.expression(sc, e.Value)
		if err != nil {
			return nil, err
		}
		return &ir.SetValue{Symbol: b.value(sc, e.Set), Value: value}, nil

	case "get":
		return &ir.GetValue{Symbol: b.value(sc, e.Get)}, nil

	case "field":
		sym, ok := lookup(sc, fieldsOf, e.Field)
		if !ok {
			sym = external(b.l, b.l.externalFields, e.Field, symbols.NewFieldSymbol)
		}
		receiver, err := b.expression(sc, e.Receiver)
		if err != nil {
			return nil, err
		}
		if !e.keys["value"] {
			return &ir.GetField{Symbol: sym, Receiver: receiver}, nil
		}
		value, err := b.expression(sc, e.Value)
		if err != nil {
			return nil, err
		}
		return &ir.SetField{Symbol: sym, Receiver: receiver, Value: value}, nil

	case "enum":
		sym, ok := lookup(sc, entriesOf, e.Enum)
		if !ok {
			sym = external(b.l, b.l.externalEntries, e.Enum, symbols.NewEnumEntrySymbol)
		}
		return &ir.GetEnumValue{Symbol: sym}, nil

	case "property":
		sym, ok := lookup(sc, propertiesOf, e.Property)
		if !ok {
			sym = external(b.l, b.l.externalProperties, e.Property, symbols.NewPropertySymbol)
		}
		return &ir.PropertyReference{Symbol: sym}, nil

	case "call":
		callee, ok := lookup(sc, functionsOf, e.Call)
		if !ok {
			callee = external(b.l, b.l.externalFunctions, e.Call, symbols.NewFunctionSymbol)
		}
		call := &ir.Call{Callee: callee}
		for _, ta := range e.TypeArgs {
			t, err := b.typ(sc, ta, e.line)
			if err != nil {
				return nil, err
			}
			call.TypeArguments = append(call.TypeArguments, t)
		}
		for i := range e.Args {
			arg, err := b.expression(sc, &e.Args[i])
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, arg)
		}
		return call, nil

	case "class_ref":
		return &ir.ClassReference{Classifier: b.classifier(sc, e.ClassRef)}, nil

	case "const":
		return &ir.Const{Value: e.Const}, nil
	}
	return nil, b.errorf(e.line, "expression has no kind")
}

func (b *builder) value(sc *scope, name string) symbols.ValueSymbol {
	if v, ok := lookup(sc, valuesOf, name); ok {
		return v
	}
	return external(b.l, b.l.externalValues, name, symbols.NewVariableSymbol)
}
