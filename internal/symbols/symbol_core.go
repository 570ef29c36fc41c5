// Package symbols defines the identity tokens the IR uses to name declarations.
//
// A symbol is compared by pointer identity. Its id, name and descriptor are
// informational: two symbols with the same name and descriptor are still
// different declarations.
package symbols

import (
	"fmt"

	"github.com/google/uuid"
)

type SymbolKind int

const (
	ClassSymbolKind SymbolKind = iota
	ConstructorSymbolKind
	EnumEntrySymbolKind
	ExternalPackageFragmentSymbolKind
	FieldSymbolKind
	FileSymbolKind
	FunctionSymbolKind
	TypeParameterSymbolKind
	ValueParameterSymbolKind
	VariableSymbolKind
	PropertySymbolKind
	TypeAliasSymbolKind
	ReturnableBlockSymbolKind
)

var kindNames = [...]string{
	ClassSymbolKind:                   "class",
	ConstructorSymbolKind:             "constructor",
	EnumEntrySymbolKind:               "enum entry",
	ExternalPackageFragmentSymbolKind: "external package fragment",
	FieldSymbolKind:                   "field",
	FileSymbolKind:                    "file",
	FunctionSymbolKind:                "function",
	TypeParameterSymbolKind:           "type parameter",
	ValueParameterSymbolKind:          "value parameter",
	VariableSymbolKind:                "variable",
	PropertySymbolKind:                "property",
	TypeAliasSymbolKind:               "type alias",
	ReturnableBlockSymbolKind:         "returnable block",
}

func (k SymbolKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// Descriptor is the metadata carried alongside a symbol (types, annotations, ...).
// Nothing in this module looks inside it.
type Descriptor any

// Symbol is the common surface of every declaration symbol.
type Symbol interface {
	Kind() SymbolKind
	ID() uuid.UUID
	Name() string
	Descriptor() Descriptor
	isNil() bool
}

// IsNil reports whether s is a nil interface or a typed nil symbol pointer.
func IsNil(s Symbol) bool {
	return s == nil || s.isNil()
}

type symbolBase struct {
	id         uuid.UUID
	name       string
	descriptor Descriptor
}

func newBase(name string, descriptor Descriptor) symbolBase {
	return symbolBase{id: uuid.New(), name: name, descriptor: descriptor}
}

func (b *symbolBase) ID() uuid.UUID          { return b.id }
func (b *symbolBase) Name() string           { return b.name }
func (b *symbolBase) Descriptor() Descriptor { return b.descriptor }

// ShortID returns the first eight hex digits of the symbol id, enough to tell
// an original from its copy in dumps.
func ShortID(s Symbol) string {
	return s.ID().String()[:8]
}

// Describe renders a symbol as "kind name#shortid". A nil symbol renders as "<nil>".
func Describe(s Symbol) string {
	if IsNil(s) {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s#%s", s.Kind(), s.Name(), ShortID(s))
}
