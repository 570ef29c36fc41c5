package symbols

import (
	"strings"
	"testing"
)

// Membership of the closed sets is fixed at compile time.
var (
	_ ValueSymbol = (*ValueParameterSymbol)(nil)
	_ ValueSymbol = (*VariableSymbol)(nil)

	_ FunctionLikeSymbol = (*FunctionSymbol)(nil)
	_ FunctionLikeSymbol = (*ConstructorSymbol)(nil)

	_ ClassifierSymbol = (*ClassSymbol)(nil)
	_ ClassifierSymbol = (*TypeParameterSymbol)(nil)

	_ ReturnTargetSymbol = (*FunctionSymbol)(nil)
	_ ReturnTargetSymbol = (*ConstructorSymbol)(nil)
	_ ReturnTargetSymbol = (*ReturnableBlockSymbol)(nil)
)

func TestSymbolKinds(t *testing.T) {
	tests := []struct {
		sym  Symbol
		kind SymbolKind
		name string
	}{
		{NewClassSymbol("C", nil), ClassSymbolKind, "class"},
		{NewConstructorSymbol("<init>", nil), ConstructorSymbolKind, "constructor"},
		{NewEnumEntrySymbol("RED", nil), EnumEntrySymbolKind, "enum entry"},
		{NewExternalPackageFragmentSymbol("kotlin", nil), ExternalPackageFragmentSymbolKind, "external package fragment"},
		{NewFieldSymbol("f", nil), FieldSymbolKind, "field"},
		{NewFileSymbol("main.kt", nil), FileSymbolKind, "file"},
		{NewFunctionSymbol("f", nil), FunctionSymbolKind, "function"},
		{NewTypeParameterSymbol("T", nil), TypeParameterSymbolKind, "type parameter"},
		{NewValueParameterSymbol("p", nil), ValueParameterSymbolKind, "value parameter"},
		{NewVariableSymbol("v", nil), VariableSymbolKind, "variable"},
		{NewPropertySymbol("p", nil), PropertySymbolKind, "property"},
		{NewTypeAliasSymbol("A", nil), TypeAliasSymbolKind, "type alias"},
		{NewReturnableBlockSymbol("b", nil), ReturnableBlockSymbolKind, "returnable block"},
	}
	for _, tt := range tests {
		if tt.sym.Kind() != tt.kind {
			t.Errorf("%T.Kind() = %v, want %v", tt.sym, tt.sym.Kind(), tt.kind)
		}
		if tt.kind.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", int(tt.kind), tt.kind.String(), tt.name)
		}
	}

	if got := SymbolKind(99).String(); got != "SymbolKind(99)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestSymbolIdentity(t *testing.T) {
	a := NewClassSymbol("Foo", "desc")
	b := NewClassSymbol("Foo", "desc")
	if a == b {
		t.Fatal("two constructions must be distinct symbols")
	}
	if a.ID() == b.ID() {
		t.Error("ids must differ")
	}
	if a.Descriptor() != "desc" {
		t.Errorf("descriptor = %v, want desc", a.Descriptor())
	}
}

func TestIsNilAndDescribe(t *testing.T) {
	var typed *VariableSymbol
	if !IsNil(nil) {
		t.Error("IsNil(nil) = false")
	}
	if !IsNil(typed) {
		t.Error("IsNil(typed nil) = false")
	}
	if Describe(typed) != "<nil>" {
		t.Errorf("Describe(typed nil) = %q", Describe(typed))
	}

	v := NewVariableSymbol("x", nil)
	if IsNil(v) {
		t.Error("IsNil(v) = true")
	}
	d := Describe(v)
	if !strings.HasPrefix(d, "variable x#") || len(ShortID(v)) != 8 {
		t.Errorf("Describe(v) = %q", d)
	}
}
