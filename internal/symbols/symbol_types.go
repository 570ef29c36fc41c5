package symbols

// Concrete symbol types, one per declaration category. All of them are used
// through pointers; the pointer is the identity.

type ClassSymbol struct{ symbolBase }

func NewClassSymbol(name string, descriptor Descriptor) *ClassSymbol {
	return &ClassSymbol{newBase(name, descriptor)}
}

func (s *ClassSymbol) Kind() SymbolKind { return ClassSymbolKind }
func (s *ClassSymbol) isNil() bool      { return s == nil }

type ConstructorSymbol struct{ symbolBase }

func NewConstructorSymbol(name string, descriptor Descriptor) *ConstructorSymbol {
	return &ConstructorSymbol{newBase(name, descriptor)}
}

func (s *ConstructorSymbol) Kind() SymbolKind { return ConstructorSymbolKind }
func (s *ConstructorSymbol) isNil() bool      { return s == nil }

type EnumEntrySymbol struct{ symbolBase }

func NewEnumEntrySymbol(name string, descriptor Descriptor) *EnumEntrySymbol {
	return &EnumEntrySymbol{newBase(name, descriptor)}
}

func (s *EnumEntrySymbol) Kind() SymbolKind { return EnumEntrySymbolKind }
func (s *EnumEntrySymbol) isNil() bool      { return s == nil }

type ExternalPackageFragmentSymbol struct{ symbolBase }

func NewExternalPackageFragmentSymbol(name string, descriptor Descriptor) *ExternalPackageFragmentSymbol {
	return &ExternalPackageFragmentSymbol{newBase(name, descriptor)}
}

func (s *ExternalPackageFragmentSymbol) Kind() SymbolKind { return ExternalPackageFragmentSymbolKind }
func (s *ExternalPackageFragmentSymbol) isNil() bool      { return s == nil }

type FieldSymbol struct{ symbolBase }

func NewFieldSymbol(name string, descriptor Descriptor) *FieldSymbol {
	return &FieldSymbol{newBase(name, descriptor)}
}

func (s *FieldSymbol) Kind() SymbolKind { return FieldSymbolKind }
func (s *FieldSymbol) isNil() bool      { return s == nil }

type FileSymbol struct{ symbolBase }

func NewFileSymbol(name string, descriptor Descriptor) *FileSymbol {
	return &FileSymbol{newBase(name, descriptor)}
}

func (s *FileSymbol) Kind() SymbolKind { return FileSymbolKind }
func (s *FileSymbol) isNil() bool      { return s == nil }

type FunctionSymbol struct{ symbolBase }

func NewFunctionSymbol(name string, descriptor Descriptor) *FunctionSymbol {
	return &FunctionSymbol{newBase(name, descriptor)}
}

func (s *FunctionSymbol) Kind() SymbolKind { return FunctionSymbolKind }
func (s *FunctionSymbol) isNil() bool      { return s == nil }

type TypeParameterSymbol struct{ symbolBase }

func NewTypeParameterSymbol(name string, descriptor Descriptor) *TypeParameterSymbol {
	return &TypeParameterSymbol{newBase(name, descriptor)}
}

func (s *TypeParameterSymbol) Kind() SymbolKind { return TypeParameterSymbolKind }
func (s *TypeParameterSymbol) isNil() bool      { return s == nil }

type ValueParameterSymbol struct{ symbolBase }

func NewValueParameterSymbol(name string, descriptor Descriptor) *ValueParameterSymbol {
	return &ValueParameterSymbol{newBase(name, descriptor)}
}

func (s *ValueParameterSymbol) Kind() SymbolKind { return ValueParameterSymbolKind }
func (s *ValueParameterSymbol) isNil() bool      { return s == nil }

type VariableSymbol struct{ symbolBase }

func NewVariableSymbol(name string, descriptor Descriptor) *VariableSymbol {
	return &VariableSymbol{newBase(name, descriptor)}
}

func (s *VariableSymbol) Kind() SymbolKind { return VariableSymbolKind }
func (s *VariableSymbol) isNil() bool      { return s == nil }

type PropertySymbol struct{ symbolBase }

func NewPropertySymbol(name string, descriptor Descriptor) *PropertySymbol {
	return &PropertySymbol{newBase(name, descriptor)}
}

func (s *PropertySymbol) Kind() SymbolKind { return PropertySymbolKind }
func (s *PropertySymbol) isNil() bool      { return s == nil }

type TypeAliasSymbol struct{ symbolBase }

func NewTypeAliasSymbol(name string, descriptor Descriptor) *TypeAliasSymbol {
	return &TypeAliasSymbol{newBase(name, descriptor)}
}

func (s *TypeAliasSymbol) Kind() SymbolKind { return TypeAliasSymbolKind }
func (s *TypeAliasSymbol) isNil() bool      { return s == nil }

type ReturnableBlockSymbol struct{ symbolBase }

func NewReturnableBlockSymbol(name string, descriptor Descriptor) *ReturnableBlockSymbol {
	return &ReturnableBlockSymbol{newBase(name, descriptor)}
}

func (s *ReturnableBlockSymbol) Kind() SymbolKind { return ReturnableBlockSymbolKind }
func (s *ReturnableBlockSymbol) isNil() bool      { return s == nil }
