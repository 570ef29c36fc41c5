package ir

import "github.com/funvibe/irclone/internal/symbols"

// SimpleType is a classifier applied to type arguments, e.g. List<T>?.
// Abbreviation records the alias the type was written through, if any.
type SimpleType struct {
	Classifier   symbols.ClassifierSymbol
	Arguments    []*SimpleType
	Nullable     bool
	Abbreviation *symbols.TypeAliasSymbol
}

func (t *SimpleType) irNode() {}
