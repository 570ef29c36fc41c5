// Package remap records, for one deep copy, which fresh symbol replaces each
// original declaration symbol, and answers lookups during the rebuild.
//
// There are two lookup policies:
//   - declared: the symbol must have been declared inside the copied subtree;
//     a miss is a NonRemappedSymbolError.
//   - referenced: the symbol may live outside the subtree; a miss returns the
//     original unchanged.
package remap

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/funvibe/irclone/internal/symbols"
)

// Key is the constraint for sub-table keys: a concrete, comparable symbol type.
type Key interface {
	comparable
	symbols.Symbol
}

// Declarer records a replacement for a symbol.
type Declarer[S Key] interface {
	Declare(original S, factory func(S) S)
}

// DeclaredLookup is the strict policy.
type DeclaredLookup[S Key] interface {
	GetDeclared(original S) (S, error)
}

// ReferencedLookup is the lenient policy.
type ReferencedLookup[S Key] interface {
	GetReferenced(original S) S
}

// Entry is one recorded original -> replacement pair.
type Entry[S Key] struct {
	Original    S
	Replacement S
}

// Table maps original symbols of one kind to their replacements.
type Table[S Key] struct {
	name    string
	entries map[S]S
	logger  *slog.Logger
}

var (
	_ Declarer[*symbols.ClassSymbol]         = (*Table[*symbols.ClassSymbol])(nil)
	_ DeclaredLookup[*symbols.ClassSymbol]   = (*Table[*symbols.ClassSymbol])(nil)
	_ ReferencedLookup[*symbols.ClassSymbol] = (*Table[*symbols.ClassSymbol])(nil)
)

func NewTable[S Key](name string, logger *slog.Logger) *Table[S] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Table[S]{
		name:    name,
		entries: make(map[S]S),
		logger:  logger,
	}
}

// Declare records original -> factory(original). A second declaration of the
// same original replaces the first one; no error is raised. Nil symbols are
// skipped.
func (t *Table[S]) Declare(original S, factory func(S) S) {
	if symbols.IsNil(original) {
		t.logger.Debug("nil symbol not declared", "table", t.name)
		return
	}
	replacement := factory(original)
	if previous, ok := t.entries[original]; ok {
		t.logger.Debug("symbol redeclared",
			"table", t.name,
			"symbol", symbols.Describe(original),
			"previous", symbols.Describe(previous),
			"replacement", symbols.Describe(replacement))
	}
	t.entries[original] = replacement
}

func (t *Table[S]) GetDeclared(original S) (S, error) {
	if replacement, ok := t.entries[original]; ok {
		return replacement, nil
	}
	var zero S
	return zero, NewNonRemappedSymbolError(original)
}

func (t *Table[S]) GetReferenced(original S) S {
	if replacement, ok := t.entries[original]; ok {
		return replacement
	}
	return original
}

func (t *Table[S]) Len() int {
	return len(t.entries)
}

// Entries returns the recorded pairs ordered by original name, then id.
func (t *Table[S]) Entries() []Entry[S] {
	result := make([]Entry[S], 0, len(t.entries))
	for original, replacement := range t.entries {
		result = append(result, Entry[S]{Original: original, Replacement: replacement})
	}
	slices.SortFunc(result, func(a, b Entry[S]) int {
		if c := cmp.Compare(a.Original.Name(), b.Original.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.Original.ID().String(), b.Original.ID().String())
	})
	return result
}
