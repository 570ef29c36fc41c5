package remap

import (
	"log/slog"

	"github.com/funvibe/irclone/internal/symbols"
)

// SymbolRemapper holds one sub-table per declaration kind. Create one per
// deep copy with NewSymbolRemapper and drop it when the copy is done; reusing
// it would leak mappings from one copy into the next.
//
// Not safe for concurrent use.
type SymbolRemapper struct {
	Classes                  *Table[*symbols.ClassSymbol]
	Constructors             *Table[*symbols.ConstructorSymbol]
	EnumEntries              *Table[*symbols.EnumEntrySymbol]
	ExternalPackageFragments *Table[*symbols.ExternalPackageFragmentSymbol]
	Fields                   *Table[*symbols.FieldSymbol]
	Files                    *Table[*symbols.FileSymbol]
	Functions                *Table[*symbols.FunctionSymbol]
	TypeParameters           *Table[*symbols.TypeParameterSymbol]
	ValueParameters          *Table[*symbols.ValueParameterSymbol]
	Variables                *Table[*symbols.VariableSymbol]
	Properties               *Table[*symbols.PropertySymbol]
	TypeAliases              *Table[*symbols.TypeAliasSymbol]
	ReturnableBlocks         *Table[*symbols.ReturnableBlockSymbol]
}

func NewSymbolRemapper(logger *slog.Logger) *SymbolRemapper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SymbolRemapper{
		Classes:                  NewTable[*symbols.ClassSymbol]("classes", logger),
		Constructors:             NewTable[*symbols.ConstructorSymbol]("constructors", logger),
		EnumEntries:              NewTable[*symbols.EnumEntrySymbol]("enum entries", logger),
		ExternalPackageFragments: NewTable[*symbols.ExternalPackageFragmentSymbol]("external package fragments", logger),
		Fields:                   NewTable[*symbols.FieldSymbol]("fields", logger),
		Files:                    NewTable[*symbols.FileSymbol]("files", logger),
		Functions:                NewTable[*symbols.FunctionSymbol]("functions", logger),
		TypeParameters:           NewTable[*symbols.TypeParameterSymbol]("type parameters", logger),
		ValueParameters:          NewTable[*symbols.ValueParameterSymbol]("value parameters", logger),
		Variables:                NewTable[*symbols.VariableSymbol]("variables", logger),
		Properties:               NewTable[*symbols.PropertySymbol]("properties", logger),
		TypeAliases:              NewTable[*symbols.TypeAliasSymbol]("type aliases", logger),
		ReturnableBlocks:         NewTable[*symbols.ReturnableBlockSymbol]("returnable blocks", logger),
	}
}

// Mapping is a kind-erased Entry, used for reporting.
type Mapping struct {
	Original    symbols.Symbol
	Replacement symbols.Symbol
}

// Len returns the number of recorded mappings across all kinds.
func (r *SymbolRemapper) Len() int {
	return r.Classes.Len() +
		r.Constructors.Len() +
		r.EnumEntries.Len() +
		r.ExternalPackageFragments.Len() +
		r.Fields.Len() +
		r.Files.Len() +
		r.Functions.Len() +
		r.TypeParameters.Len() +
		r.ValueParameters.Len() +
		r.Variables.Len() +
		r.Properties.Len() +
		r.TypeAliases.Len() +
		r.ReturnableBlocks.Len()
}

// Mappings lists every recorded pair grouped by kind in SymbolKind order.
func (r *SymbolRemapper) Mappings() []Mapping {
	var out []Mapping
	out = appendMappings(out, r.Classes)
	out = appendMappings(out, r.Constructors)
	out = appendMappings(out, r.EnumEntries)
	out = appendMappings(out, r.ExternalPackageFragments)
	out = appendMappings(out, r.Fields)
	out = appendMappings(out, r.Files)
	out = appendMappings(out, r.Functions)
	out = appendMappings(out, r.TypeParameters)
	out = appendMappings(out, r.ValueParameters)
	out = appendMappings(out, r.Variables)
	out = appendMappings(out, r.Properties)
	out = appendMappings(out, r.TypeAliases)
	out = appendMappings(out, r.ReturnableBlocks)
	return out
}

func appendMappings[S Key](out []Mapping, t *Table[S]) []Mapping {
	for _, e := range t.Entries() {
		out = append(out, Mapping{Original: e.Original, Replacement: e.Replacement})
	}
	return out
}
