package irfile

import (
	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

type aliasInfo struct {
	sym      *symbols.TypeAliasSymbol
	params   []*ir.TypeParameter
	expanded *ir.SimpleType
}

// scope is one lexical level. Names live in separate namespaces per role, so
// a class and its constructor can share a name.
type scope struct {
	parent      *scope
	values      map[string]symbols.ValueSymbol
	functions   map[string]symbols.FunctionLikeSymbol
	classifiers map[string]symbols.ClassifierSymbol
	fields      map[string]*symbols.FieldSymbol
	properties  map[string]*symbols.PropertySymbol
	entries     map[string]*symbols.EnumEntrySymbol
	aliases     map[string]*aliasInfo
	labels      map[string]symbols.ReturnTargetSymbol
	target      symbols.ReturnTargetSymbol // set on function, constructor and inline scopes
}

func newScope(parent *scope) *scope {
	return &scope{
		parent:      parent,
		values:      make(map[string]symbols.ValueSymbol),
		functions:   make(map[string]symbols.FunctionLikeSymbol),
		classifiers: make(map[string]symbols.ClassifierSymbol),
		fields:      make(map[string]*symbols.FieldSymbol),
		properties:  make(map[string]*symbols.PropertySymbol),
		entries:     make(map[string]*symbols.EnumEntrySymbol),
		aliases:     make(map[string]*aliasInfo),
		labels:      make(map[string]symbols.ReturnTargetSymbol),
	}
}

// targetScope opens a scope that return statements can leave by label.
func targetScope(parent *scope, label string, target symbols.ReturnTargetSymbol) *scope {
	sc := newScope(parent)
	sc.target = target
	sc.labels[label] = target
	return sc
}

func lookup[T any](sc *scope, ns func(*scope) map[string]T, name string) (T, bool) {
	for s := sc; s != nil; s = s.parent {
		if v, ok := ns(s)[name]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func valuesOf(s *scope) map[string]symbols.ValueSymbol           { return s.values }
func functionsOf(s *scope) map[string]symbols.FunctionLikeSymbol { return s.functions }
func classifiersOf(s *scope) map[string]symbols.ClassifierSymbol { return s.classifiers }
func fieldsOf(s *scope) map[string]*symbols.FieldSymbol          { return s.fields }
func propertiesOf(s *scope) map[string]*symbols.PropertySymbol   { return s.properties }
func entriesOf(s *scope) map[string]*symbols.EnumEntrySymbol     { return s.entries }
func aliasesOf(s *scope) map[string]*aliasInfo                   { return s.aliases }
func labelsOf(s *scope) map[string]symbols.ReturnTargetSymbol    { return s.labels }

func (sc *scope) innermostTarget() symbols.ReturnTargetSymbol {
	for s := sc; s != nil; s = s.parent {
		if s.target != nil {
			return s.target
		}
	}
	return nil
}
