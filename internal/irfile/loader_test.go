package irfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

func loadBox(t *testing.T) (*ir.File, *Loader) {
	t.Helper()
	file, l, err := Load("testdata/box.yaml", nil)
	require.NoError(t, err)
	return file, l
}

func declByName[T ir.Declaration](t *testing.T, decls []ir.Declaration, name string) T {
	t.Helper()
	for _, d := range decls {
		if typed, ok := d.(T); ok && d.GetSymbol().Name() == name {
			return typed
		}
	}
	require.Failf(t, "declaration not found", "%s", name)
	var zero T
	return zero
}

func TestLoad_Structure(t *testing.T) {
	file, _ := loadBox(t)

	assert.Equal(t, "box.kt", file.Symbol.Name())
	assert.Equal(t, map[string]any{"source": "box.kt"}, file.Symbol.Descriptor())
	require.Len(t, file.Declarations, 6)

	box := declByName[*ir.Class](t, file.Declarations, "Box")
	require.Len(t, box.TypeParameters, 1)
	require.NotNil(t, box.SuperClass)
	assert.Equal(t, "Base", box.SuperClass.Name())
	require.Len(t, box.Declarations, 5)

	_, ok := box.Declarations[0].(*ir.Constructor)
	assert.True(t, ok, "first member is the constructor")
}

func TestLoad_TypeParameterBoundsSeeThemselves(t *testing.T) {
	file, _ := loadBox(t)
	box := declByName[*ir.Class](t, file.Declarations, "Box")

	tp := box.TypeParameters[0]
	require.Len(t, tp.Bounds, 1)
	bound := tp.Bounds[0]
	assert.Equal(t, "Comparable", bound.Classifier.Name())
	require.Len(t, bound.Arguments, 1)
	assert.Same(t, tp.Symbol, bound.Arguments[0].Classifier)
}

func TestLoad_MemberReferences(t *testing.T) {
	file, _ := loadBox(t)
	box := declByName[*ir.Class](t, file.Declarations, "Box")
	field := declByName[*ir.Field](t, box.Declarations, "value")
	get := declByName[*ir.Function](t, box.Declarations, "get")

	ret := get.Body.Statements[0].(*ir.Return)
	assert.Same(t, get.Symbol, ret.Target)
	assert.Same(t, field.Symbol, ret.Value.(*ir.GetField).Symbol)
	assert.Same(t, box.TypeParameters[0].Symbol, get.ReturnType.Classifier)

	ctor := box.Declarations[0].(*ir.Constructor)
	set := ctor.Body.Statements[0].(*ir.SetField)
	assert.Same(t, field.Symbol, set.Symbol, "constructor sees a field declared after it")
	assert.Same(t, ctor.ValueParameters[0].Symbol, set.Value.(*ir.GetValue).Symbol)
}

func TestLoad_PropertyGetterReadsBackingField(t *testing.T) {
	file, _ := loadBox(t)
	box := declByName[*ir.Class](t, file.Declarations, "Box")
	prop := declByName[*ir.Property](t, box.Declarations, "size")

	require.NotNil(t, prop.BackingField)
	require.NotNil(t, prop.Getter)
	ret := prop.Getter.Body.Statements[0].(*ir.Return)
	assert.Same(t, prop.Getter.Symbol, ret.Target)
	assert.Same(t, prop.BackingField.Symbol, ret.Value.(*ir.GetField).Symbol)
	assert.Equal(t, 0, prop.BackingField.Initializer.(*ir.Const).Value)
}

func TestLoad_LocalsAndConstructorCalls(t *testing.T) {
	file, _ := loadBox(t)
	box := declByName[*ir.Class](t, file.Declarations, "Box")
	ctor := box.Declarations[0].(*ir.Constructor)
	mapFn := declByName[*ir.Function](t, box.Declarations, "map")
	get := declByName[*ir.Function](t, box.Declarations, "get")

	mapped := mapFn.Body.Statements[0].(*ir.Variable)
	invoke := mapped.Initializer.(*ir.Call)
	assert.Same(t, mapFn.ValueParameters[0].Symbol, invoke.Arguments[0].(*ir.GetValue).Symbol)
	assert.Same(t, get.Symbol, invoke.Arguments[1].(*ir.Call).Callee)

	ret := mapFn.Body.Statements[1].(*ir.Return)
	call := ret.Value.(*ir.Call)
	assert.Same(t, ctor.Symbol, call.Callee)
	require.Len(t, call.TypeArguments, 1)
	assert.Same(t, mapFn.TypeParameters[0].Symbol, call.TypeArguments[0].Classifier)
	assert.Same(t, mapped.Symbol, call.Arguments[0].(*ir.GetValue).Symbol)
}

// render writes a resolved type back out by classifier name, ignoring
// abbreviations.
func render(typ *ir.SimpleType) string {
	var sb strings.Builder
	sb.WriteString(typ.Classifier.Name())
	if len(typ.Arguments) > 0 {
		args := make([]string, len(typ.Arguments))
		for i, a := range typ.Arguments {
			args[i] = render(a)
		}
		sb.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	if typ.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

func TestLoad_AliasAbbreviation(t *testing.T) {
	file, _ := loadBox(t)
	alias := declByName[*ir.TypeAlias](t, file.Declarations, "Boxes")
	box := declByName[*ir.Class](t, file.Declarations, "Box")
	wrapAll := declByName[*ir.Function](t, file.Declarations, "wrapAll")

	typ := wrapAll.ValueParameters[0].Type
	assert.Same(t, alias.Symbol, typ.Abbreviation)
	assert.Equal(t, "List<Box<Int>>", render(typ))
	assert.Same(t, box.Symbol, typ.Arguments[0].Classifier)

	// The alias declaration itself is left untouched.
	assert.Equal(t, "List<Box<E>>", render(alias.Expanded))
	assert.Same(t, alias.TypeParameters[0].Symbol, alias.Expanded.Arguments[0].Arguments[0].Classifier)
}

const aliasFixture = `
file: aliases.kt
declarations:
  - typealias: Boxes
    type_parameters: [E]
    expands: List<Box<E>>
  - typealias: StrMap
    expands: Map<String, Int>
  - typealias: Opt
    type_parameters: [T]
    expands: T?
  - typealias: Pairs
    type_parameters: [K, V]
    expands: List<Pair<K, V>>
  - typealias: Twice
    type_parameters: [T]
    expands: Pair<T, T>
  - function: f
    parameters:
      - {name: boxes, type: Boxes<Int>}
      - {name: strMap, type: StrMap}
      - {name: nullableBoxes, type: "Boxes<Int>?"}
      - {name: optional, type: Opt<String>}
      - {name: nested, type: Boxes<StrMap>}
      - {name: pairs, type: "Pairs<String, String>"}
      - {name: twice, type: Twice<Int>}
`

func paramByName(t *testing.T, f *ir.Function, name string) *ir.ValueParameter {
	t.Helper()
	for _, p := range f.ValueParameters {
		if p.Symbol.Name() == name {
			return p
		}
	}
	require.Failf(t, "parameter not found", "%s", name)
	return nil
}

func TestLoad_AliasExpansion(t *testing.T) {
	file, err := NewLoader(nil).Parse([]byte(aliasFixture), "aliases.yaml")
	require.NoError(t, err)
	f := declByName[*ir.Function](t, file.Declarations, "f")

	tests := []struct {
		param string
		alias string
		want  string
	}{
		{"boxes", "Boxes", "List<Box<Int>>"},
		{"strMap", "StrMap", "Map<String, Int>"},
		{"nullableBoxes", "Boxes", "List<Box<Int>>?"},
		{"optional", "Opt", "String?"},
		{"nested", "Boxes", "List<Box<Map<String, Int>>>"},
		{"pairs", "Pairs", "List<Pair<String, String>>"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			p := paramByName(t, f, tt.param)
			assert.Equal(t, tt.want, render(p.Type))
			require.NotNil(t, p.Type.Abbreviation)
			assert.Equal(t, tt.alias, p.Type.Abbreviation.Name())
		})
	}
}

func TestLoad_AliasArgumentsAreNotShared(t *testing.T) {
	file, err := NewLoader(nil).Parse([]byte(aliasFixture), "aliases.yaml")
	require.NoError(t, err)
	f := declByName[*ir.Function](t, file.Declarations, "f")

	pair := paramByName(t, f, "twice").Type
	assert.Equal(t, "Pair<Int, Int>", render(pair))
	require.Len(t, pair.Arguments, 2)
	assert.Same(t, pair.Arguments[0].Classifier, pair.Arguments[1].Classifier)
	assert.NotSame(t, pair.Arguments[0], pair.Arguments[1])
}

func TestLoad_ReturnTargets(t *testing.T) {
	file, _ := loadBox(t)
	wrapAll := declByName[*ir.Function](t, file.Declarations, "wrapAll")
	helper := declByName[*ir.Function](t, file.Declarations, "helper")

	total := wrapAll.Body.Statements[0].(*ir.Variable)
	inline := wrapAll.Body.Statements[1].(*ir.ReturnableBlock)
	assert.Equal(t, "each", inline.Symbol.Name())

	set := inline.Statements[0].(*ir.SetValue)
	assert.Same(t, total.Symbol, set.Symbol)

	labelled := inline.Statements[1].(*ir.Return)
	assert.Same(t, inline.Symbol, labelled.Target)

	outer := wrapAll.Body.Statements[2].(*ir.Return)
	assert.Same(t, wrapAll.Symbol, outer.Target)
	assert.Same(t, helper.Symbol, outer.Value.(*ir.Call).Callee, "forward call resolves")
}

func TestLoad_PackageMembersAreVisible(t *testing.T) {
	file, _ := loadBox(t)
	pkg := declByName[*ir.ExternalPackageFragment](t, file.Declarations, "kotlin.collections")
	listOf := declByName[*ir.Function](t, pkg.Declarations, "listOf")
	uses := declByName[*ir.Function](t, file.Declarations, "uses")

	assert.Same(t, listOf.Symbol, uses.Body.Statements[0].(*ir.Call).Callee)

	box := declByName[*ir.Class](t, file.Declarations, "Box")
	assert.Same(t, box.Symbol, uses.Body.Statements[1].(*ir.ClassReference).Classifier)
}

func TestLoad_ExternalsAreShared(t *testing.T) {
	file, l := loadBox(t)
	uses := declByName[*ir.Function](t, file.Declarations, "uses")

	first := uses.Body.Statements[3].(*ir.Call)
	second := uses.Body.Statements[4].(*ir.Call)
	assert.Same(t, first.Callee, second.Callee)
	assert.Same(t, first.Arguments[0].(*ir.GetValue).Symbol, second.Arguments[0].(*ir.GetValue).Symbol)

	var names []string
	for _, s := range l.Externals() {
		if s.Kind() == symbols.FunctionSymbolKind {
			names = append(names, s.Name())
		}
	}
	assert.Equal(t, []string{"invoke", "println", "size"}, names)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing file name",
			yaml:    "declarations: []",
			wantErr: "x.yaml: file name is required",
		},
		{
			name:    "declaration without kind",
			yaml:    "file: a\ndeclarations:\n  - type: Int\n",
			wantErr: "x.yaml:3: declaration has no kind",
		},
		{
			name:    "return outside function",
			yaml:    "file: a\ndeclarations:\n  - field: f\n    init: {return: {const: 1}}\n",
			wantErr: "x.yaml:4: return outside of a function",
		},
		{
			name:    "unknown return label",
			yaml:    "file: a\ndeclarations:\n  - function: f\n    body:\n      - return: {const: 1}\n        from: g\n",
			wantErr: "x.yaml:5: return@g has no enclosing target",
		},
		{
			name:    "constructor at top level",
			yaml:    "file: a\ndeclarations:\n  - constructor: true\n",
			wantErr: "x.yaml:3: constructor outside of a class",
		},
		{
			name:    "bad type",
			yaml:    "file: a\ndeclarations:\n  - field: f\n    type: List<Int\n",
			wantErr: "x.yaml:3: expected ',' or '>'",
		},
		{
			name:    "variable as expression",
			yaml:    "file: a\ndeclarations:\n  - field: f\n    init: {var: x}\n",
			wantErr: "x.yaml:4: variable x declared where an expression is expected",
		},
		{
			name:    "typealias arity",
			yaml:    "file: a\ndeclarations:\n  - typealias: A\n    type_parameters: [T]\n    expands: List<T>\n  - field: f\n    type: A\n",
			wantErr: "x.yaml:6: typealias A takes 1 type arguments, got 0",
		},
		{
			name:    "typealias without expansion",
			yaml:    "file: a\ndeclarations:\n  - typealias: A\n",
			wantErr: "x.yaml:3: typealias A needs expands",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).Parse([]byte(tt.yaml), "x.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseType(t *testing.T) {
	te, err := parseType("Map<K, List<V>?>?")
	require.NoError(t, err)
	assert.Equal(t, "Map", te.name)
	assert.True(t, te.nullable)
	require.Len(t, te.args, 2)
	assert.Equal(t, "K", te.args[0].name)
	assert.Equal(t, "List", te.args[1].name)
	assert.True(t, te.args[1].nullable)
	assert.Equal(t, "V", te.args[1].args[0].name)

	_, err = parseType("List<>")
	assert.Error(t, err)
	_, err = parseType("A B")
	assert.Error(t, err)
}
