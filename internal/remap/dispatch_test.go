package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/irclone/internal/symbols"
)

// Foreign types that satisfy the closed interfaces by embedding a member.
// They stand in for a kind the facades were never taught about.
type (
	foreignValue      struct{ *symbols.VariableSymbol }
	foreignFunction   struct{ *symbols.FunctionSymbol }
	foreignClassifier struct{ *symbols.ClassSymbol }
	foreignTarget     struct{ *symbols.ReturnableBlockSymbol }
)

func TestGetReferencedValue(t *testing.T) {
	r := NewSymbolRemapper(nil)
	p := symbols.NewValueParameterSymbol("p", nil)
	pCopy := symbols.NewValueParameterSymbol("p$copy", nil)
	r.ValueParameters.Declare(p, func(*symbols.ValueParameterSymbol) *symbols.ValueParameterSymbol { return pCopy })

	v := symbols.NewVariableSymbol("v", nil)
	vCopy := symbols.NewVariableSymbol("v$copy", nil)
	r.Variables.Declare(v, func(*symbols.VariableSymbol) *symbols.VariableSymbol { return vCopy })

	x := symbols.NewVariableSymbol("x", nil)

	tests := []struct {
		name string
		in   symbols.ValueSymbol
		want symbols.ValueSymbol
	}{
		{"declared parameter", p, pCopy},
		{"declared variable", v, vCopy},
		{"undeclared variable", x, x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetReferencedValue(tt.in)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestGetReferencedValue_DoesNotCrossTables(t *testing.T) {
	r := NewSymbolRemapper(nil)
	v := symbols.NewVariableSymbol("v", nil)
	r.Variables.Declare(v, func(*symbols.VariableSymbol) *symbols.VariableSymbol {
		return symbols.NewVariableSymbol("v$copy", nil)
	})

	got, err := r.GetReferencedValue(v)
	require.NoError(t, err)
	assert.Equal(t, symbols.VariableSymbolKind, got.Kind())
	assert.Equal(t, 0, r.ValueParameters.Len())
}

func TestGetReferencedFunction(t *testing.T) {
	r := NewSymbolRemapper(nil)
	f := symbols.NewFunctionSymbol("f", nil)
	fCopy := symbols.NewFunctionSymbol("f$copy", nil)
	r.Functions.Declare(f, func(*symbols.FunctionSymbol) *symbols.FunctionSymbol { return fCopy })

	c := symbols.NewConstructorSymbol("<init>", nil)
	cCopy := symbols.NewConstructorSymbol("<init>$copy", nil)
	r.Constructors.Declare(c, func(*symbols.ConstructorSymbol) *symbols.ConstructorSymbol { return cCopy })

	lib := symbols.NewFunctionSymbol("println", nil)

	for _, tt := range []struct {
		in, want symbols.FunctionLikeSymbol
	}{
		{f, fCopy},
		{c, cCopy},
		{lib, lib},
	} {
		got, err := r.GetReferencedFunction(tt.in)
		require.NoError(t, err)
		assert.Same(t, tt.want, got)
	}
}

func TestGetReferencedClassifier(t *testing.T) {
	r := NewSymbolRemapper(nil)
	cls := symbols.NewClassSymbol("Foo", nil)
	clsCopy := symbols.NewClassSymbol("Foo$copy", nil)
	r.Classes.Declare(cls, func(*symbols.ClassSymbol) *symbols.ClassSymbol { return clsCopy })

	tp := symbols.NewTypeParameterSymbol("T", nil)
	tpCopy := symbols.NewTypeParameterSymbol("T$copy", nil)
	r.TypeParameters.Declare(tp, func(*symbols.TypeParameterSymbol) *symbols.TypeParameterSymbol { return tpCopy })

	object := symbols.NewClassSymbol("Any", nil)

	for _, tt := range []struct {
		in, want symbols.ClassifierSymbol
	}{
		{cls, clsCopy},
		{tp, tpCopy},
		{object, object},
	} {
		got, err := r.GetReferencedClassifier(tt.in)
		require.NoError(t, err)
		assert.Same(t, tt.want, got)
	}
}

func TestGetReferencedReturnTarget(t *testing.T) {
	r := NewSymbolRemapper(nil)
	f := symbols.NewFunctionSymbol("f", nil)
	fCopy := symbols.NewFunctionSymbol("f$copy", nil)
	r.Functions.Declare(f, func(*symbols.FunctionSymbol) *symbols.FunctionSymbol { return fCopy })

	b := symbols.NewReturnableBlockSymbol("inlined", nil)
	bCopy := symbols.NewReturnableBlockSymbol("inlined$copy", nil)
	r.ReturnableBlocks.Declare(b, func(*symbols.ReturnableBlockSymbol) *symbols.ReturnableBlockSymbol { return bCopy })

	c := symbols.NewConstructorSymbol("<init>", nil)

	for _, tt := range []struct {
		in, want symbols.ReturnTargetSymbol
	}{
		{f, fCopy},
		{b, bCopy},
		{c, c},
	} {
		got, err := r.GetReferencedReturnTarget(tt.in)
		require.NoError(t, err)
		assert.Same(t, tt.want, got)
	}
}

func TestFacades_RejectUnknownKinds(t *testing.T) {
	r := NewSymbolRemapper(nil)

	tests := []struct {
		name string
		call func() error
		set  string
	}{
		{"value", func() error {
			_, err := r.GetReferencedValue(foreignValue{symbols.NewVariableSymbol("ghost", nil)})
			return err
		}, "value"},
		{"nil value", func() error {
			_, err := r.GetReferencedValue(nil)
			return err
		}, "value"},
		{"function", func() error {
			_, err := r.GetReferencedFunction(foreignFunction{symbols.NewFunctionSymbol("ghost", nil)})
			return err
		}, "function"},
		{"classifier", func() error {
			_, err := r.GetReferencedClassifier(foreignClassifier{symbols.NewClassSymbol("Ghost", nil)})
			return err
		}, "classifier"},
		{"return target", func() error {
			_, err := r.GetReferencedReturnTarget(foreignTarget{symbols.NewReturnableBlockSymbol("ghost", nil)})
			return err
		}, "return target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedSymbolKind)
			assert.NotErrorIs(t, err, ErrNonRemappedSymbol)

			var uke *UnexpectedSymbolKindError
			require.ErrorAs(t, err, &uke)
			assert.Equal(t, tt.set, uke.Set)
		})
	}
}

func TestResolveOptionalClass(t *testing.T) {
	r := NewSymbolRemapper(nil)
	base := symbols.NewClassSymbol("Base", nil)
	baseCopy := symbols.NewClassSymbol("Base$copy", nil)
	r.Classes.Declare(base, func(*symbols.ClassSymbol) *symbols.ClassSymbol { return baseCopy })
	external := symbols.NewClassSymbol("Object", nil)

	assert.Nil(t, r.ResolveOptionalClass(nil))
	assert.Same(t, baseCopy, r.ResolveOptionalClass(base))
	assert.Same(t, external, r.ResolveOptionalClass(external))
}
