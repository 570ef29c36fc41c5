package remap

import "github.com/funvibe/irclone/internal/symbols"

// The facades below resolve multi-kind references. They only use the
// referenced policy: a value, callee or classifier mentioned in the copied
// subtree may equally well be declared outside of it.

func (r *SymbolRemapper) GetReferencedValue(s symbols.ValueSymbol) (symbols.ValueSymbol, error) {
	switch v := s.(type) {
	case *symbols.ValueParameterSymbol:
		return r.ValueParameters.GetReferenced(v), nil
	case *symbols.VariableSymbol:
		return r.Variables.GetReferenced(v), nil
	default:
		return nil, NewUnexpectedSymbolKindError("value", s)
	}
}

func (r *SymbolRemapper) GetReferencedFunction(s symbols.FunctionLikeSymbol) (symbols.FunctionLikeSymbol, error) {
	switch f := s.(type) {
	case *symbols.FunctionSymbol:
		return r.Functions.GetReferenced(f), nil
	case *symbols.ConstructorSymbol:
		return r.Constructors.GetReferenced(f), nil
	default:
		return nil, NewUnexpectedSymbolKindError("function", s)
	}
}

func (r *SymbolRemapper) GetReferencedClassifier(s symbols.ClassifierSymbol) (symbols.ClassifierSymbol, error) {
	switch c := s.(type) {
	case *symbols.ClassSymbol:
		return r.Classes.GetReferenced(c), nil
	case *symbols.TypeParameterSymbol:
		return r.TypeParameters.GetReferenced(c), nil
	default:
		return nil, NewUnexpectedSymbolKindError("classifier", s)
	}
}

func (r *SymbolRemapper) GetReferencedReturnTarget(s symbols.ReturnTargetSymbol) (symbols.ReturnTargetSymbol, error) {
	switch t := s.(type) {
	case *symbols.FunctionSymbol:
		return r.Functions.GetReferenced(t), nil
	case *symbols.ConstructorSymbol:
		return r.Constructors.GetReferenced(t), nil
	case *symbols.ReturnableBlockSymbol:
		return r.ReturnableBlocks.GetReferenced(t), nil
	default:
		return nil, NewUnexpectedSymbolKindError("return target", s)
	}
}

// ResolveOptionalClass resolves a class reference that may be absent, such as
// a missing super class. nil stays nil and is never looked up.
func (r *SymbolRemapper) ResolveOptionalClass(s *symbols.ClassSymbol) *symbols.ClassSymbol {
	if s == nil {
		return nil
	}
	return r.Classes.GetReferenced(s)
}
