// Package irfile reads IR fixtures written in YAML.
//
// Names are resolved lexically. Class members, top-level declarations and
// declarations of external packages are visible throughout their container,
// so they may be used before they are declared. Parameters and local
// variables are visible from their declaration onwards. A name that resolves
// to nothing becomes an external symbol; every mention of the same external
// name yields the same symbol.
package irfile

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

type Loader struct {
	logger *slog.Logger

	externalClasses    map[string]*symbols.ClassSymbol
	externalFunctions  map[string]*symbols.FunctionSymbol
	externalValues     map[string]*symbols.VariableSymbol
	externalFields     map[string]*symbols.FieldSymbol
	externalProperties map[string]*symbols.PropertySymbol
	externalEntries    map[string]*symbols.EnumEntrySymbol
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		logger:             logger,
		externalClasses:    make(map[string]*symbols.ClassSymbol),
		externalFunctions:  make(map[string]*symbols.FunctionSymbol),
		externalValues:     make(map[string]*symbols.VariableSymbol),
		externalFields:     make(map[string]*symbols.FieldSymbol),
		externalProperties: make(map[string]*symbols.PropertySymbol),
		externalEntries:    make(map[string]*symbols.EnumEntrySymbol),
	}
}

// Load reads a fixture file with a fresh Loader.
func Load(path string, logger *slog.Logger) (*ir.File, *Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	l := NewLoader(logger)
	file, err := l.Parse(data, path)
	if err != nil {
		return nil, nil, err
	}
	return file, l, nil
}

// Parse builds the IR for one fixture. The path is used only in error messages.
func (l *Loader) Parse(data []byte, path string) (*ir.File, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.File == "" {
		return nil, fmt.Errorf("%s: file name is required", path)
	}

	b := &builder{l: l, path: path}
	decls, err := b.members(newScope(nil), doc.Declarations)
	if err != nil {
		return nil, err
	}
	return &ir.File{
		Symbol:       symbols.NewFileSymbol(doc.File, doc.Descriptor),
		Declarations: decls,
	}, nil
}

// Externals lists the external symbols created so far, ordered by kind then name.
func (l *Loader) Externals() []symbols.Symbol {
	var out []symbols.Symbol
	out = appendExternals(out, l.externalClasses)
	out = appendExternals(out, l.externalFunctions)
	out = appendExternals(out, l.externalValues)
	out = appendExternals(out, l.externalFields)
	out = appendExternals(out, l.externalProperties)
	out = appendExternals(out, l.externalEntries)
	slices.SortStableFunc(out, func(a, b symbols.Symbol) int {
		if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}

func appendExternals[S symbols.Symbol](out []symbols.Symbol, cache map[string]S) []symbols.Symbol {
	for _, s := range cache {
		out = append(out, s)
	}
	return out
}

func external[S symbols.Symbol](l *Loader, cache map[string]S, name string, ctor func(string, symbols.Descriptor) S) S {
	if s, ok := cache[name]; ok {
		return s
	}
	s := ctor(name, nil)
	cache[name] = s
	l.logger.Debug("unresolved name treated as external", "symbol", symbols.Describe(s))
	return s
}

type builder struct {
	l    *Loader
	path string
}

func (b *builder) errorf(line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", b.path, line, fmt.Sprintf(format, args...))
}

// members hoists every declaration in docs into sc, then builds them.
// Type aliases are built first so that types elsewhere can be written
// through them.
func (b *builder) members(sc *scope, docs []declDoc) ([]ir.Declaration, error) {
	for i := range docs {
		if err := b.hoist(sc, &docs[i]); err != nil {
			return nil, err
		}
	}
	return b.build(sc, docs)
}

func (b *builder) build(sc *scope, docs []declDoc) ([]ir.Declaration, error) {
	out := make([]ir.Declaration, len(docs))
	for i := range docs {
		if docs[i].kind() != declTypeAlias {
			continue
		}
		d, err := b.typeAlias(sc, &docs[i])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	for i := range docs {
		if out[i] != nil {
			continue
		}
		d, err := b.declaration(sc, &docs[i])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func (b *builder) hoist(sc *scope, d *declDoc) error {
	switch d.kind() {
	case declClass:
		sym := symbols.NewClassSymbol(d.Class, d.Descriptor)
		d.sym = sym
		sc.classifiers[d.Class] = sym
		// Constructors are callable by class name from the enclosing scope.
		for i := range d.Members {
			m := &d.Members[i]
			if m.kind() == declConstructor {
				ctor := symbols.NewConstructorSymbol("<init>", m.Descriptor)
				m.sym = ctor
				sc.functions[d.Class] = ctor
			}
		}
	case declFunction:
		sym := symbols.NewFunctionSymbol(d.Function, d.Descriptor)
		d.sym = sym
		sc.functions[d.Function] = sym
	case declConstructor:
		ctor, ok := d.sym.(*symbols.ConstructorSymbol)
		if !ok {
			return b.errorf(d.line, "constructor outside of a class")
		}
		sc.functions["<init>"] = ctor
	case declField:
		sym := symbols.NewFieldSymbol(d.Field, d.Descriptor)
		d.sym = sym
		sc.fields[d.Field] = sym
	case declProperty:
		sym := symbols.NewPropertySymbol(d.Property, d.Descriptor)
		d.sym = sym
		sc.properties[d.Property] = sym
		d.backing = symbols.NewFieldSymbol(d.Property, nil)
		sc.fields[d.Property] = d.backing
	case declEntry:
		sym := symbols.NewEnumEntrySymbol(d.Entry, d.Descriptor)
		d.sym = sym
		sc.entries[d.Entry] = sym
	case declTypeAlias:
		sym := symbols.NewTypeAliasSymbol(d.TypeAlias, d.Descriptor)
		d.sym = sym
		sc.aliases[d.TypeAlias] = &aliasInfo{sym: sym}
	case declPackage:
		d.sym = symbols.NewExternalPackageFragmentSymbol(d.Package, d.Descriptor)
		for i := range d.Members {
			if err := b.hoist(sc, &d.Members[i]); err != nil {
				return err
			}
		}
	default:
		return b.errorf(d.line, "declaration has no kind (class, function, constructor, field, property, entry, typealias or package)")
	}
	return nil
}

func (b *builder) declaration(sc *scope, d *declDoc) (ir.Declaration, error) {
	switch d.kind() {
	case declClass:
		return b.class(sc, d)
	case declFunction:
		return b.function(sc, d)
	case declConstructor:
		return b.constructor(sc, d)
	case declField:
		return b.field(sc, d)
	case declProperty:
		return b.property(sc, d)
	case declEntry:
		return b.enumEntry(sc, d)
	case declPackage:
		decls, err := b.build(sc, d.Members)
		if err != nil {
			return nil, err
		}
		return &ir.ExternalPackageFragment{
			Symbol:       d.sym.(*symbols.ExternalPackageFragmentSymbol),
			Declarations: decls,
		}, nil
	}
	return nil, b.errorf(d.line, "unexpected declaration")
}

func (b *builder) class(sc *scope, d *declDoc) (*ir.Class, error) {
	inner := newScope(sc)
	tps, err := b.typeParameters(inner, d.TypeParameters, d.line)
	if err != nil {
		return nil, err
	}

	var super *symbols.ClassSymbol
	if d.Super != "" {
		c, ok := b.classifier(sc, d.Super).(*symbols.ClassSymbol)
		if !ok {
			return nil, b.errorf(d.line, "super class %q is not a class", d.Super)
		}
		super = c
	}

	decls, err := b.members(inner, d.Members)
	if err != nil {
		return nil, err
	}
	return &ir.Class{
		Symbol:         d.sym.(*symbols.ClassSymbol),
		TypeParameters: tps,
		SuperClass:     super,
		Declarations:   decls,
	}, nil
}

func (b *builder) typeParameters(sc *scope, docs []typeParamDoc, line int) ([]*ir.TypeParameter, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]*ir.TypeParameter, len(docs))
	for i, tp := range docs {
		if tp.Name == "" {
			return nil, b.errorf(line, "type parameter %d has no name", i)
		}
		sym := symbols.NewTypeParameterSymbol(tp.Name, nil)
		sc.classifiers[tp.Name] = sym
		out[i] = &ir.TypeParameter{Symbol: sym}
	}
	// Bounds are resolved after all parameters are in scope: T : Comparable<T>.
	for i, tp := range docs {
		for _, bound := range tp.Bounds {
			t, err := b.typ(sc, bound, line)
			if err != nil {
				return nil, err
			}
			out[i].Bounds = append(out[i].Bounds, t)
		}
	}
	return out, nil
}

func (b *builder) valueParameters(sc *scope, docs []paramDoc, line int) ([]*ir.ValueParameter, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]*ir.ValueParameter, len(docs))
	for i, p := range docs {
		if p.Name == "" {
			return nil, b.errorf(line, "parameter %d has no name", i)
		}
		typ, err := b.typ(sc, p.Type, line)
		if err != nil {
			return nil, err
		}
		// Defaults may use earlier parameters only.
		def, err := b.expression(sc, p.Default)
		if err != nil {
			return nil, err
		}
		sym := symbols.NewValueParameterSymbol(p.Name, p.Descriptor)
		sc.values[p.Name] = sym
		out[i] = &ir.ValueParameter{Symbol: sym, Type: typ, Default: def}
	}
	return out, nil
}

func (b *builder) function(sc *scope, d *declDoc) (*ir.Function, error) {
	sym := d.sym.(*symbols.FunctionSymbol)
	inner := targetScope(sc, d.Function, sym)
	tps, err := b.typeParameters(inner, d.TypeParameters, d.line)
	if err != nil {
		return nil, err
	}
	vps, err := b.valueParameters(inner, d.Parameters, d.line)
	if err != nil {
		return nil, err
	}
	ret, err := b.typ(inner, d.Returns, d.line)
	if err != nil {
		return nil, err
	}
	body, err := b.body(inner, d.Body)
	if err != nil {
		return nil, err
	}
	return &ir.Function{
		Symbol:          sym,
		TypeParameters:  tps,
		ValueParameters: vps,
		ReturnType:      ret,
		Body:            body,
	}, nil
}

func (b *builder) constructor(sc *scope, d *declDoc) (*ir.Constructor, error) {
	sym := d.sym.(*symbols.ConstructorSymbol)
	inner := targetScope(sc, "<init>", sym)
	vps, err := b.valueParameters(inner, d.Parameters, d.line)
	if err != nil {
		return nil, err
	}
	body, err := b.body(inner, d.Body)
	if err != nil {
		return nil, err
	}
	return &ir.Constructor{Symbol: sym, ValueParameters: vps, Body: body}, nil
}

func (b *builder) field(sc *scope, d *declDoc) (*ir.Field, error) {
	typ, err := b.typ(sc, d.Type, d.line)
	if err != nil {
		return nil, err
	}
	init, err := b.expression(sc, d.Init)
	if err != nil {
		return nil, err
	}
	return &ir.Field{Symbol: d.sym.(*symbols.FieldSymbol), Type: typ, Initializer: init}, nil
}

func (b *builder) property(sc *scope, d *declDoc) (*ir.Property, error) {
	typ, err := b.typ(sc, d.Type, d.line)
	if err != nil {
		return nil, err
	}
	init, err := b.expression(sc, d.Init)
	if err != nil {
		return nil, err
	}
	prop := &ir.Property{
		Symbol:       d.sym.(*symbols.PropertySymbol),
		BackingField: &ir.Field{Symbol: d.backing, Type: typ, Initializer: init},
	}
	if d.Getter != nil {
		name := "<get-" + d.Property + ">"
		getter := symbols.NewFunctionSymbol(name, nil)
		body, err := b.body(targetScope(sc, name, getter), d.Getter)
		if err != nil {
			return nil, err
		}
		prop.Getter = &ir.Function{Symbol: getter, ReturnType: typ, Body: body}
	}
	return prop, nil
}

func (b *builder) enumEntry(sc *scope, d *declDoc) (*ir.EnumEntry, error) {
	init, err := b.expression(sc, d.Init)
	if err != nil {
		return nil, err
	}
	return &ir.EnumEntry{Symbol: d.sym.(*symbols.EnumEntrySymbol), Initializer: init}, nil
}

func (b *builder) typeAlias(sc *scope, d *declDoc) (*ir.TypeAlias, error) {
	if d.Expands == "" {
		return nil, b.errorf(d.line, "typealias %s needs expands", d.TypeAlias)
	}
	inner := newScope(sc)
	tps, err := b.typeParameters(inner, d.TypeParameters, d.line)
	if err != nil {
		return nil, err
	}
	expanded, err := b.typ(inner, d.Expands, d.line)
	if err != nil {
		return nil, err
	}
	info := sc.aliases[d.TypeAlias]
	info.params = tps
	info.expanded = expanded
	return &ir.TypeAlias{Symbol: info.sym, TypeParameters: tps, Expanded: expanded}, nil
}

// typ resolves a type string. An empty string means no type.
func (b *builder) typ(sc *scope, s string, line int) (*ir.SimpleType, error) {
	if s == "" {
		return nil, nil
	}
	te, err := parseType(s)
	if err != nil {
		return nil, b.errorf(line, "%v", err)
	}
	return b.resolveType(sc, te, line)
}

func (b *builder) resolveType(sc *scope, te *typeExpr, line int) (*ir.SimpleType, error) {
	var args []*ir.SimpleType
	for _, a := range te.args {
		t, err := b.resolveType(sc, a, line)
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	if alias, ok := lookup(sc, aliasesOf, te.name); ok {
		if alias.expanded == nil {
			return nil, b.errorf(line, "typealias %s is used before its expansion is known", te.name)
		}
		if len(args) != len(alias.params) {
			return nil, b.errorf(line, "typealias %s takes %d type arguments, got %d", te.name, len(alias.params), len(args))
		}
		bindings := make(map[symbols.ClassifierSymbol]*ir.SimpleType, len(args))
		for i, p := range alias.params {
			bindings[p.Symbol] = args[i]
		}
		t := substitute(alias.expanded, bindings)
		t.Nullable = t.Nullable || te.nullable
		t.Abbreviation = alias.sym
		return t, nil
	}
	return &ir.SimpleType{Classifier: b.classifier(sc, te.name), Arguments: args, Nullable: te.nullable}, nil
}

// substitute returns a fresh copy of t with every bound type parameter
// replaced by its argument. A nullable parameter keeps its ? after
// substitution.
func substitute(t *ir.SimpleType, bindings map[symbols.ClassifierSymbol]*ir.SimpleType) *ir.SimpleType {
	if arg, ok := bindings[t.Classifier]; ok {
		out := substitute(arg, nil)
		out.Nullable = out.Nullable || t.Nullable
		return out
	}
	out := &ir.SimpleType{
		Classifier:   t.Classifier,
		Nullable:     t.Nullable,
		Abbreviation: t.Abbreviation,
	}
	for _, a := range t.Arguments {
		out.Arguments = append(out.Arguments, substitute(a, bindings))
	}
	return out
}

func (b *builder) classifier(sc *scope, name string) symbols.ClassifierSymbol {
	if c, ok := lookup(sc, classifiersOf, name); ok {
		return c
	}
	return external(b.l, b.l.externalClasses, name, symbols.NewClassSymbol)
}
